package api

import (
	"errors"

	"github.com/valyala/fasthttp"

	"salesdesk/models"
)

// GetUsers returns one page of the company's account members.
func (c *Client) GetUsers(companyID string, filter models.UserFilter) (models.UserPage, error) {
	var page models.UserPage
	if companyID == "" {
		return page, errors.New("company id is required")
	}
	err := c.do(fasthttp.MethodGet, "/companies/"+companyID+"/users", encodeUserFilter(filter), nil, &page)
	return page, err
}

func (c *Client) GetUser(companyID, userID string) (models.User, error) {
	var user models.User
	if companyID == "" || userID == "" {
		return user, errors.New("company id and user id are required")
	}
	err := c.do(fasthttp.MethodGet, "/companies/"+companyID+"/users/"+userID, "", nil, &user)
	return user, err
}

func (c *Client) CreateUser(companyID string, input models.UserInput) (models.User, error) {
	var user models.User
	if companyID == "" {
		return user, errors.New("company id is required")
	}
	err := c.do(fasthttp.MethodPost, "/companies/"+companyID+"/users", "", input, &user)
	return user, err
}

func (c *Client) UpdateUser(companyID, userID string, input models.UserInput) (models.User, error) {
	var user models.User
	if companyID == "" || userID == "" {
		return user, errors.New("company id and user id are required")
	}
	err := c.do(fasthttp.MethodPut, "/companies/"+companyID+"/users/"+userID, "", input, &user)
	return user, err
}

// AssignManager is a manager-scoped mutation: a missing manager id fails
// locally before any request is attempted.
func (c *Client) AssignManager(companyID, userID, managerID string) (models.User, error) {
	var user models.User
	if companyID == "" || userID == "" {
		return user, errors.New("company id and user id are required")
	}
	if managerID == "" {
		return user, errors.New("manager id is required")
	}
	body := map[string]string{"managerId": managerID}
	err := c.do(fasthttp.MethodPatch, "/companies/"+companyID+"/users/"+userID+"/manager", "", body, &user)
	return user, err
}

func (c *Client) DeactivateUser(companyID, userID string) error {
	if companyID == "" || userID == "" {
		return errors.New("company id and user id are required")
	}
	return c.do(fasthttp.MethodPatch, "/companies/"+companyID+"/users/"+userID+"/deactivate", "", nil, nil)
}

func (c *Client) DeleteUser(companyID, userID string) error {
	if companyID == "" || userID == "" {
		return errors.New("company id and user id are required")
	}
	return c.do(fasthttp.MethodDelete, "/companies/"+companyID+"/users/"+userID, "", nil, nil)
}

// GetCompany returns the tenant profile.
func (c *Client) GetCompany(companyID string) (models.Company, error) {
	var company models.Company
	if companyID == "" {
		return company, errors.New("company id is required")
	}
	err := c.do(fasthttp.MethodGet, "/companies/"+companyID, "", nil, &company)
	return company, err
}

func (c *Client) UpdateCompany(companyID string, input models.CompanyInput) (models.Company, error) {
	var company models.Company
	if companyID == "" {
		return company, errors.New("company id is required")
	}
	err := c.do(fasthttp.MethodPut, "/companies/"+companyID, "", input, &company)
	return company, err
}
