package api

import (
	"net/url"
	"strconv"
	"strings"

	"salesdesk/models"
)

// queryArgs builds a query string preserving the order keys were added
// in. Empty values are omitted entirely, never sent as blank parameters.
type queryArgs struct {
	buf strings.Builder
}

func (q *queryArgs) Add(key, value string) {
	if value == "" {
		return
	}
	if q.buf.Len() > 0 {
		q.buf.WriteByte('&')
	}
	q.buf.WriteString(key)
	q.buf.WriteByte('=')
	q.buf.WriteString(url.QueryEscape(value))
}

func (q *queryArgs) AddInt(key string, value int) {
	if value <= 0 {
		return
	}
	q.Add(key, strconv.Itoa(value))
}

func (q *queryArgs) String() string {
	return q.buf.String()
}

func encodeLeadFilter(f models.LeadFilter) string {
	var q queryArgs
	q.AddInt("page", f.Page)
	q.AddInt("limit", f.Limit)
	q.Add("search", f.Search)
	q.Add("status", f.Status)
	q.Add("source", f.Source)
	return q.String()
}

func encodeCallFilter(f models.CallFilter) string {
	var q queryArgs
	q.AddInt("page", f.Page)
	q.AddInt("limit", f.Limit)
	q.Add("search", f.Search)
	q.Add("callType", f.CallType)
	q.Add("status", f.Status)
	return q.String()
}

func encodeMeetingFilter(f models.MeetingFilter) string {
	var q queryArgs
	q.AddInt("page", f.Page)
	q.AddInt("limit", f.Limit)
	q.Add("search", f.Search)
	q.Add("status", f.Status)
	q.Add("from", f.From)
	q.Add("to", f.To)
	return q.String()
}

func encodeDealFilter(f models.DealFilter) string {
	var q queryArgs
	q.AddInt("page", f.Page)
	q.AddInt("limit", f.Limit)
	q.Add("search", f.Search)
	q.Add("stage", f.Stage)
	q.Add("ownerId", f.OwnerID)
	return q.String()
}

func encodeUserFilter(f models.UserFilter) string {
	var q queryArgs
	q.AddInt("page", f.Page)
	q.AddInt("limit", f.Limit)
	q.Add("search", f.Search)
	q.Add("role", f.Role)
	return q.String()
}

func encodeTemplateFilter(f models.TemplateFilter) string {
	var q queryArgs
	q.AddInt("page", f.Page)
	q.AddInt("limit", f.Limit)
	q.Add("search", f.Search)
	q.Add("type", f.Type)
	return q.String()
}

func encodeTicketFilter(f models.TicketFilter) string {
	var q queryArgs
	q.AddInt("page", f.Page)
	q.AddInt("limit", f.Limit)
	q.Add("status", f.Status)
	return q.String()
}

func encodeReportFilter(f models.ReportFilter) string {
	var q queryArgs
	q.Add("from", f.From)
	q.Add("to", f.To)
	return q.String()
}
