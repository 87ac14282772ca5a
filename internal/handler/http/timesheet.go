package http

import (
	"net/http"

	"github.com/pontolabs/ponto-backend-go/internal/domain/timesheet"
	"github.com/pontolabs/ponto-backend-go/internal/handler/http/response"
)

type TimesheetHandler interface {
	GetDaily(w http.ResponseWriter, r *http.Request)
	GetPeriodReport(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &timesheetHandlerImpl{
		timesheetService: timesheetService,
	}
}

// GetDaily implements TimesheetHandler.
func (h *timesheetHandlerImpl) GetDaily(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := timesheet.DailyRecordRequest{
		EmployeeID: query.Get("employee_id"),
		Date:       query.Get("date"),
	}

	result, err := h.timesheetService.GetDailyRecord(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetPeriodReport implements TimesheetHandler.
func (h *timesheetHandlerImpl) GetPeriodReport(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := timesheet.PeriodReportRequest{
		StartDate: query.Get("start_date"),
		EndDate:   query.Get("end_date"),
	}
	if v := query.Get("employee_id"); v != "" {
		req.EmployeeID = &v
	}

	result, err := h.timesheetService.GetPeriodReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
