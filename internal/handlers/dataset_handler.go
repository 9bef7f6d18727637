package handlers

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/dto"
	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/errors"
	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/loader"
	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/models"
	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const uploadFormField = "file"

// DatasetHandler handles dataset and dashboard HTTP requests
type DatasetHandler struct {
	dashboardService services.DashboardServiceInterface
	maxUploadBytes   int64
}

// NewDatasetHandler creates a new dataset handler
func NewDatasetHandler(dashboardService services.DashboardServiceInterface, maxUploadBytes int64) *DatasetHandler {
	return &DatasetHandler{
		dashboardService: dashboardService,
		maxUploadBytes:   maxUploadBytes,
	}
}

// RegisterRoutes mounts the dataset endpoints on g. throttle guards the two
// routes that create datasets; uploads also get uploadLimits.
func (h *DatasetHandler) RegisterRoutes(g *echo.Group, throttle echo.MiddlewareFunc, uploadLimits ...echo.MiddlewareFunc) {
	g.GET("", h.ListDatasets)
	g.POST("/generate", h.GenerateDataset, throttle)
	g.POST("/upload", h.UploadDataset, append([]echo.MiddlewareFunc{throttle}, uploadLimits...)...)
	g.GET("/:id", h.GetDataset)
	g.DELETE("/:id", h.DeleteDataset)
	g.GET("/:id/records", h.ListRecords)
	g.GET("/:id/completion", h.GetCompletion)
	g.GET("/:id/merchants", h.GetMerchantSavings)
	g.POST("/:id/savings", h.CalculateSavings)
	g.POST("/:id/summary", h.GetSummary)
}

// GenerateDataset creates a seeded synthetic dataset
// @Summary Generate synthetic dataset
// @Tags Datasets
// @Accept json
// @Produce json
// @Param request body dto.GenerateDatasetRequest false "Row count and seed"
// @Success 201 {object} SuccessResponse{data=dto.DatasetResponse}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Router /api/v1/datasets/generate [post]
func (h *DatasetHandler) GenerateDataset(c echo.Context) error {
	var req dto.GenerateDatasetRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
		}
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	dataset, err := h.dashboardService.CreateSynthetic(req)
	if err != nil {
		if stderrors.Is(err, services.ErrInvalidRowCount) {
			return SendError(c, errors.ValidationOutOfRange, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    dto.NewDatasetResponse(dataset),
		Message: "Synthetic dataset generated",
	})
}

// UploadDataset loads a CSV or XLSX file into a new dataset
// @Summary Upload dataset
// @Tags Datasets
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV or XLSX file"
// @Success 201 {object} SuccessResponse{data=dto.UploadResponse}
// @Failure 400 {object} errors.ErrorResponse "LOAD_002/LOAD_003/LOAD_005 - Unusable file"
// @Failure 413 {object} errors.ErrorResponse "LOAD_004/LOAD_006 - File too large"
// @Failure 422 {object} errors.ErrorResponse "LOAD_001 - Missing required columns"
// @Router /api/v1/datasets/upload [post]
func (h *DatasetHandler) UploadDataset(c echo.Context) error {
	fileHeader, err := c.FormFile(uploadFormField)
	if err != nil {
		return SendError(c, errors.ValidationRequiredField,
			errors.WithDetails(fmt.Sprintf("multipart field %q is required", uploadFormField)))
	}

	if h.maxUploadBytes > 0 && fileHeader.Size > h.maxUploadBytes {
		return SendError(c, errors.LoadFileTooLarge,
			errors.WithDetails(fmt.Sprintf("limit is %d bytes", h.maxUploadBytes)))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return SendError(c, errors.LoadUnreadable)
	}
	defer file.Close()

	dataset, result, err := h.dashboardService.CreateFromUpload(fileHeader.Filename, file)
	if err != nil {
		return sendLoadError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data: dto.UploadResponse{
			Dataset:  dto.NewDatasetResponse(dataset),
			Warnings: result.Warnings,
		},
		Message: "Dataset uploaded",
		Meta: map[string]int{
			"total_rows":   result.TotalRows,
			"skipped_rows": result.SkippedRows,
		},
	})
}

// ListDatasets lists stored datasets, newest first
// @Summary List datasets
// @Tags Datasets
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} SuccessResponse{data=dto.DatasetListResponse}
// @Router /api/v1/datasets [get]
func (h *DatasetHandler) ListDatasets(c echo.Context) error {
	params := dto.ListDatasetsParams{
		Page:     getIntParam(c, "page", 1),
		PageSize: getIntParam(c, "page_size", 20),
	}
	if err := c.Validate(params); err != nil {
		return err
	}

	datasets, total, err := h.dashboardService.ListDatasets(params.Page, params.PageSize)
	if err != nil {
		if stderrors.Is(err, services.ErrInvalidPageRange) {
			return SendError(c, errors.ValidationOutOfRange)
		}
		return SendSystemError(c, err)
	}

	response := dto.DatasetListResponse{
		Datasets: make([]dto.DatasetResponse, len(datasets)),
		Total:    total,
		Page:     params.Page,
		PageSize: params.PageSize,
	}
	for i := range datasets {
		response.Datasets[i] = dto.NewDatasetResponse(&datasets[i])
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: response})
}

// GetDataset returns dataset metadata
// @Summary Get dataset
// @Tags Datasets
// @Produce json
// @Param id path string true "Dataset ID (UUID)"
// @Success 200 {object} SuccessResponse{data=dto.DatasetResponse}
// @Failure 404 {object} errors.ErrorResponse "DATASET_001 - Dataset not found"
// @Router /api/v1/datasets/{id} [get]
func (h *DatasetHandler) GetDataset(c echo.Context) error {
	id, err := parseDatasetID(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidID)
	}

	dataset, err := h.dashboardService.GetDataset(id)
	if err != nil {
		return sendDatasetError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: dto.NewDatasetResponse(dataset)})
}

// DeleteDataset removes a dataset
// @Summary Delete dataset
// @Tags Datasets
// @Param id path string true "Dataset ID (UUID)"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse "DATASET_001 - Dataset not found"
// @Router /api/v1/datasets/{id} [delete]
func (h *DatasetHandler) DeleteDataset(c echo.Context) error {
	id, err := parseDatasetID(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidID)
	}

	if err := h.dashboardService.DeleteDataset(id); err != nil {
		return sendDatasetError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListRecords returns the scored table filtered by facet
// @Summary List scored records
// @Tags Dashboard
// @Produce json
// @Param id path string true "Dataset ID (UUID)"
// @Param show query string false "Comma separated facets: missing_zip, missing_tax_id, complete, all"
// @Success 200 {object} SuccessResponse{data=dto.RecordsResponse}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Invalid record filter"
// @Router /api/v1/datasets/{id}/records [get]
func (h *DatasetHandler) ListRecords(c echo.Context) error {
	id, err := parseDatasetID(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidID)
	}

	filter, err := models.ParseRecordFilter(c.QueryParam("show"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFilter, errors.WithDetails(err.Error()))
	}

	records, err := h.dashboardService.ListRecords(id, filter)
	if err != nil {
		return sendDatasetError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.RecordsResponse{
			Records: records,
			Facets:  filter.Facets(),
			Total:   len(records),
		},
	})
}

// GetCompletion returns the completion ratio and caption
// @Summary Get completion progress
// @Tags Dashboard
// @Produce json
// @Param id path string true "Dataset ID (UUID)"
// @Success 200 {object} SuccessResponse{data=dto.CompletionResponse}
// @Router /api/v1/datasets/{id}/completion [get]
func (h *DatasetHandler) GetCompletion(c echo.Context) error {
	id, err := parseDatasetID(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidID)
	}

	completion, err := h.dashboardService.GetCompletion(id)
	if err != nil {
		return sendDatasetError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: completion})
}

// GetMerchantSavings returns potential savings per merchant, largest first
// @Summary Get merchant savings
// @Tags Dashboard
// @Produce json
// @Param id path string true "Dataset ID (UUID)"
// @Param limit query int false "Number of merchants" default(5)
// @Success 200 {object} SuccessResponse{data=dto.MerchantSavingsResponse}
// @Router /api/v1/datasets/{id}/merchants [get]
func (h *DatasetHandler) GetMerchantSavings(c echo.Context) error {
	id, err := parseDatasetID(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidID)
	}

	limit := getIntParam(c, "limit", 0)
	if limit < 0 {
		return SendError(c, errors.ValidationOutOfRange, errors.WithDetails("limit must not be negative"))
	}

	merchants, err := h.dashboardService.GetMerchantSavings(id, limit)
	if err != nil {
		return sendDatasetError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: merchants})
}

// CalculateSavings returns the realized savings for the fixed transactions
// @Summary Calculate realized savings
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param id path string true "Dataset ID (UUID)"
// @Param request body dto.SavingsRequest true "Fixed transaction IDs"
// @Success 200 {object} SuccessResponse{data=dto.SavingsResponse}
// @Router /api/v1/datasets/{id}/savings [post]
func (h *DatasetHandler) CalculateSavings(c echo.Context) error {
	id, err := parseDatasetID(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidID)
	}

	var req dto.SavingsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	savings, err := h.dashboardService.CalculateSavings(id, req.FixedIDs)
	if err != nil {
		return sendDatasetError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: savings})
}

// GetSummary returns the full dashboard snapshot
// @Summary Get dashboard summary
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param id path string true "Dataset ID (UUID)"
// @Param request body dto.SummaryRequest false "Fixed transaction IDs and merchant count"
// @Success 200 {object} SuccessResponse{data=quality.Summary}
// @Router /api/v1/datasets/{id}/summary [post]
func (h *DatasetHandler) GetSummary(c echo.Context) error {
	id, err := parseDatasetID(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidID)
	}

	var req dto.SummaryRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
		}
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	summary, err := h.dashboardService.GetSummary(id, req.FixedIDs, req.TopK)
	if err != nil {
		return sendDatasetError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: summary})
}

func parseDatasetID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

func sendDatasetError(c echo.Context, err error) error {
	if stderrors.Is(err, services.ErrDatasetNotFound) {
		return SendError(c, errors.DatasetNotFound)
	}
	return SendSystemError(c, err)
}

// sendLoadError maps a loader rejection onto its LOAD_* code. Missing
// columns are listed both in the message and as details.
func sendLoadError(c echo.Context, err error) error {
	var colErr *loader.ColumnError
	switch {
	case stderrors.As(err, &colErr):
		return SendError(c, errors.LoadMissingColumns, errors.WithMissingColumns(colErr.Missing))
	case stderrors.Is(err, loader.ErrEmptyInput):
		return SendError(c, errors.LoadEmptyFile)
	case stderrors.Is(err, loader.ErrUnsupportedType):
		return SendError(c, errors.LoadUnsupportedType)
	case stderrors.Is(err, loader.ErrTooManyRows):
		return SendError(c, errors.LoadTooManyRows, errors.WithDetails(err.Error()))
	case stderrors.Is(err, loader.ErrUnreadable):
		return SendError(c, errors.LoadUnreadable, errors.WithDetails(err.Error()))
	default:
		slog.Error("dataset upload failed",
			"trace_id", getTraceID(c),
			"error", err)
		return SendSystemError(c, err)
	}
}
