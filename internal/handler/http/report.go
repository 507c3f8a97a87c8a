package http

import (
	"net/http"

	"github.com/giftnest/backoffice-go/internal/domain/report"
	"github.com/giftnest/backoffice-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	GetEmployeeReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// GetEmployeeReport implements ReportHandler.
func (h *reportHandlerImpl) GetEmployeeReport(w http.ResponseWriter, r *http.Request) {
	period, err := parsePeriod(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.GenerateEmployeeReport(r.Context(), chi.URLParam(r, "id"), period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if result == nil {
		response.NotFound(w, "Employee not found")
		return
	}

	response.Success(w, result)
}
