package api

import (
	"errors"
	"time"

	"github.com/valyala/fasthttp"

	"salesdesk/models"
)

// GetAllMeetings returns one page of the company's meetings.
func (c *Client) GetAllMeetings(companyID string, filter models.MeetingFilter) (models.MeetingPage, error) {
	var page models.MeetingPage
	if companyID == "" {
		return page, errors.New("company id is required")
	}
	err := c.do(fasthttp.MethodGet, "/companies/"+companyID+"/meetings", encodeMeetingFilter(filter), nil, &page)
	return page, err
}

func (c *Client) GetMeeting(companyID, meetingID string) (models.Meeting, error) {
	var meeting models.Meeting
	if companyID == "" || meetingID == "" {
		return meeting, errors.New("company id and meeting id are required")
	}
	err := c.do(fasthttp.MethodGet, "/companies/"+companyID+"/meetings/"+meetingID, "", nil, &meeting)
	return meeting, err
}

func (c *Client) CreateMeeting(companyID string, input models.MeetingInput) (models.Meeting, error) {
	var meeting models.Meeting
	if companyID == "" {
		return meeting, errors.New("company id is required")
	}
	err := c.do(fasthttp.MethodPost, "/companies/"+companyID+"/meetings", "", input, &meeting)
	return meeting, err
}

func (c *Client) UpdateMeeting(companyID, meetingID string, input models.MeetingInput) (models.Meeting, error) {
	var meeting models.Meeting
	if companyID == "" || meetingID == "" {
		return meeting, errors.New("company id and meeting id are required")
	}
	err := c.do(fasthttp.MethodPut, "/companies/"+companyID+"/meetings/"+meetingID, "", input, &meeting)
	return meeting, err
}

// RescheduleMeeting moves a meeting to a new window.
func (c *Client) RescheduleMeeting(companyID, meetingID string, start, end time.Time) (models.Meeting, error) {
	var meeting models.Meeting
	if companyID == "" || meetingID == "" {
		return meeting, errors.New("company id and meeting id are required")
	}
	body := map[string]interface{}{"startTime": start, "endTime": end}
	err := c.do(fasthttp.MethodPatch, "/companies/"+companyID+"/meetings/"+meetingID+"/reschedule", "", body, &meeting)
	return meeting, err
}

func (c *Client) DeleteMeeting(companyID, meetingID string) error {
	if companyID == "" || meetingID == "" {
		return errors.New("company id and meeting id are required")
	}
	return c.do(fasthttp.MethodDelete, "/companies/"+companyID+"/meetings/"+meetingID, "", nil, nil)
}
