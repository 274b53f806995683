package api

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"salesdesk/models"
)

func TestQueryArgsOmitsEmptyValues(t *testing.T) {
	var q queryArgs
	q.AddInt("page", 2)
	q.Add("search", "")
	q.Add("status", "scheduled")
	q.AddInt("limit", 0)

	assert.Equal(t, "page=2&status=scheduled", q.String())
}

func TestQueryArgsEscapesValues(t *testing.T) {
	var q queryArgs
	q.Add("search", "acme & sons")

	assert.Equal(t, "search=acme+%26+sons", q.String())
}

func TestEncodeCallFilterPageAndSearchOnly(t *testing.T) {
	got := encodeCallFilter(models.CallFilter{Page: 3, Search: "demo"})

	// Unset fields must not appear at all, and order is fixed.
	assert.Equal(t, "page=3&search=demo", got)
}

func TestEncodeCallFilterFull(t *testing.T) {
	got := encodeCallFilter(models.CallFilter{
		Page:     1,
		Limit:    25,
		Search:   "kickoff",
		CallType: "outbound",
		Status:   "scheduled",
	})

	assert.Equal(t, "page=1&limit=25&search=kickoff&callType=outbound&status=scheduled", got)
}

func TestEncodeLeadFilterEmpty(t *testing.T) {
	assert.Equal(t, "", encodeLeadFilter(models.LeadFilter{}))
}
