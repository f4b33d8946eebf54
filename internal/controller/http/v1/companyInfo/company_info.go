package companyInfo

import (
	"net/http"
	"reflect"

	"bizmanage/backend/foundation/web"
	"bizmanage/backend/internal/repository/postgres/companyInfo"
)

type Controller struct {
	companyInfo CompanyInfo
}

func NewController(companyInfo CompanyInfo) *Controller {
	return &Controller{companyInfo}
}

func (uc Controller) GetInfo(c *web.Context) error {
	response, err := uc.companyInfo.GetInfo(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) UpdateAll(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request companyInfo.UpdateRequest

	if err := c.BindFunc(&request, "CompanyName"); err != nil {
		return c.RespondError(err)
	}

	request.ID = id

	err := uc.companyInfo.UpdateAll(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}
