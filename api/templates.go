package api

import (
	"errors"

	"github.com/valyala/fasthttp"

	"salesdesk/models"
)

// GetTemplates returns one page of the company's templates.
func (c *Client) GetTemplates(companyID string, filter models.TemplateFilter) (models.TemplatePage, error) {
	var page models.TemplatePage
	if companyID == "" {
		return page, errors.New("company id is required")
	}
	err := c.do(fasthttp.MethodGet, "/companies/"+companyID+"/templates", encodeTemplateFilter(filter), nil, &page)
	return page, err
}

func (c *Client) GetTemplate(companyID, templateID string) (models.Template, error) {
	var tpl models.Template
	if companyID == "" || templateID == "" {
		return tpl, errors.New("company id and template id are required")
	}
	err := c.do(fasthttp.MethodGet, "/companies/"+companyID+"/templates/"+templateID, "", nil, &tpl)
	return tpl, err
}

func (c *Client) CreateTemplate(companyID string, input models.TemplateInput) (models.Template, error) {
	var tpl models.Template
	if companyID == "" {
		return tpl, errors.New("company id is required")
	}
	err := c.do(fasthttp.MethodPost, "/companies/"+companyID+"/templates", "", input, &tpl)
	return tpl, err
}

func (c *Client) UpdateTemplate(companyID, templateID string, input models.TemplateInput) (models.Template, error) {
	var tpl models.Template
	if companyID == "" || templateID == "" {
		return tpl, errors.New("company id and template id are required")
	}
	err := c.do(fasthttp.MethodPut, "/companies/"+companyID+"/templates/"+templateID, "", input, &tpl)
	return tpl, err
}

func (c *Client) DeleteTemplate(companyID, templateID string) error {
	if companyID == "" || templateID == "" {
		return errors.New("company id and template id are required")
	}
	return c.do(fasthttp.MethodDelete, "/companies/"+companyID+"/templates/"+templateID, "", nil, nil)
}
