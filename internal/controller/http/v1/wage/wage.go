package wage

import (
	"fmt"
	"net/http"
	"reflect"
	"strconv"

	"bizmanage/backend/foundation/web"
	"bizmanage/backend/internal/pkg/currency"
	"bizmanage/backend/internal/service/payout"
	"bizmanage/backend/internal/service/wage"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/pkg/errors"
)

type Controller struct {
	wage        WageService
	companyInfo CompanyInfo
}

func NewController(wageService WageService, companyInfo CompanyInfo) *Controller {
	return &Controller{wage: wageService, companyInfo: companyInfo}
}

// CalculateWages runs a wage calculation for the requested period. Results
// are computed on the fly from attendance and never stored.
func (uc Controller) CalculateWages(c *web.Context) error {
	req, err := uc.periodRequest(c)
	if err != nil {
		return c.RespondError(err)
	}

	results, err := uc.wage.CalculateWages(c.Ctx, req)
	if err != nil {
		return c.RespondError(err)
	}

	var total float64
	for _, r := range results {
		total += r.CalculatedWage
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"results":         results,
			"count":           len(results),
			"total_wages":     total,
			"total_formatted": currency.Format(total),
		},
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) CalculateBonus(c *web.Context) error {
	req, err := uc.bonusRequest(c)
	if err != nil {
		return c.RespondError(err)
	}

	results, err := uc.wage.CalculateBonus(c.Ctx, req)
	if err != nil {
		return c.RespondError(err)
	}

	var total float64
	for _, r := range results {
		total += r.BonusAmount
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"results":         results,
			"count":           len(results),
			"total_bonus":     total,
			"total_formatted": currency.Format(total),
		},
		"status": true,
	}, http.StatusOK)
}

// ExportWagesExcel streams the wage run as an xlsx download.
func (uc Controller) ExportWagesExcel(c *web.Context) error {
	req, err := uc.periodRequest(c)
	if err != nil {
		return c.RespondError(err)
	}

	results, err := uc.wage.CalculateWages(c.Ctx, req)
	if err != nil {
		return c.RespondError(err)
	}

	buf, err := payout.WagesToExcel(results)
	if err != nil {
		return c.RespondError(err)
	}

	fileName := fmt.Sprintf("wages_%s_%s.xlsx", req.PeriodStart.String(), req.PeriodEnd.String())
	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
	return nil
}

func (uc Controller) ExportBonusExcel(c *web.Context) error {
	req, err := uc.bonusRequest(c)
	if err != nil {
		return c.RespondError(err)
	}

	results, err := uc.wage.CalculateBonus(c.Ctx, req)
	if err != nil {
		return c.RespondError(err)
	}

	buf, err := payout.BonusesToExcel(results)
	if err != nil {
		return c.RespondError(err)
	}

	fileName := fmt.Sprintf("bonuses_%s_%s.xlsx", req.PeriodStart.String(), req.PeriodEnd.String())
	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
	return nil
}

// ExportPayslipPDF builds a payslip for a single employee. employee_id is
// required here, unlike the batch endpoints.
func (uc Controller) ExportPayslipPDF(c *web.Context) error {
	req, err := uc.periodRequest(c)
	if err != nil {
		return c.RespondError(err)
	}
	if req.EmployeeID == nil {
		return c.RespondError(web.NewRequestError(errors.New("employee_id is required"), http.StatusBadRequest))
	}

	results, err := uc.wage.CalculateWages(c.Ctx, req)
	if err != nil {
		return c.RespondError(err)
	}
	if len(results) == 0 {
		return c.RespondError(web.NewRequestError(errors.New("employee not found"), http.StatusNotFound))
	}

	companyName := uc.companyName(c)

	buf, err := payout.PayslipPDF(companyName, results[0])
	if err != nil {
		return c.RespondError(err)
	}

	fileName := fmt.Sprintf("payslip_%s_%s.pdf", *req.EmployeeID, req.PeriodEnd.String())
	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
	return nil
}

func (uc Controller) ExportBonusPDF(c *web.Context) error {
	req, err := uc.bonusRequest(c)
	if err != nil {
		return c.RespondError(err)
	}
	if req.EmployeeID == nil {
		return c.RespondError(web.NewRequestError(errors.New("employee_id is required"), http.StatusBadRequest))
	}

	results, err := uc.wage.CalculateBonus(c.Ctx, req)
	if err != nil {
		return c.RespondError(err)
	}
	if len(results) == 0 {
		return c.RespondError(web.NewRequestError(errors.New("employee not found"), http.StatusNotFound))
	}

	companyName := uc.companyName(c)

	buf, err := payout.BonusSlipPDF(companyName, results[0])
	if err != nil {
		return c.RespondError(err)
	}

	fileName := fmt.Sprintf("bonus_%s_%s.pdf", *req.EmployeeID, req.PeriodEnd.String())
	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
	return nil
}

func (uc Controller) periodRequest(c *web.Context) (wage.PeriodRequest, error) {
	var req wage.PeriodRequest

	if employeeID, ok := c.GetQueryFunc(reflect.String, "employee_id").(*string); ok {
		req.EmployeeID = employeeID
	}

	from, ok := c.GetQueryFunc(reflect.String, "from").(*string)
	if !ok || from == nil {
		return wage.PeriodRequest{}, web.NewRequestError(errors.New("from is required"), http.StatusBadRequest)
	}
	to, ok := c.GetQueryFunc(reflect.String, "to").(*string)
	if !ok || to == nil {
		return wage.PeriodRequest{}, web.NewRequestError(errors.New("to is required"), http.StatusBadRequest)
	}

	start, err := date.ParseDate(*from)
	if err != nil {
		return wage.PeriodRequest{}, web.NewRequestError(errors.Wrap(err, "parsing from"), http.StatusBadRequest)
	}
	end, err := date.ParseDate(*to)
	if err != nil {
		return wage.PeriodRequest{}, web.NewRequestError(errors.Wrap(err, "parsing to"), http.StatusBadRequest)
	}
	if end.Before(start.Time) {
		return wage.PeriodRequest{}, web.NewRequestError(errors.New("to is before from"), http.StatusBadRequest)
	}

	req.PeriodStart = start
	req.PeriodEnd = end
	return req, nil
}

func (uc Controller) bonusRequest(c *web.Context) (wage.BonusRequest, error) {
	period, err := uc.periodRequest(c)
	if err != nil {
		return wage.BonusRequest{}, err
	}

	req := wage.BonusRequest{PeriodRequest: period}

	if rate, ok := c.GetQueryFunc(reflect.String, "rate").(*string); ok && rate != nil {
		parsed, err := strconv.ParseFloat(*rate, 64)
		if err != nil || parsed < 0 {
			return wage.BonusRequest{}, web.NewRequestError(errors.New("invalid rate"), http.StatusBadRequest)
		}
		req.BonusRatePercent = parsed
	}

	return req, nil
}

func (uc Controller) companyName(c *web.Context) string {
	info, err := uc.companyInfo.GetInfo(c.Ctx)
	if err != nil || info.CompanyName == nil {
		return "Company"
	}
	return *info.CompanyName
}
