package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/interncompass/api/internal/app/models/dto"
	"github.com/interncompass/api/internal/app/services"
	"github.com/interncompass/api/internal/middleware"
	"github.com/interncompass/api/internal/pkg/helpers"
)

// InternshipController handles internship listing operations
type InternshipController struct {
	internshipService services.InternshipService
	logger            zerolog.Logger
}

// NewInternshipController creates a new InternshipController
func NewInternshipController(internshipService services.InternshipService, logger zerolog.Logger) *InternshipController {
	return &InternshipController{
		internshipService: internshipService,
		logger:            logger,
	}
}

// CreateInternship creates a new internship listing
// @Summary Create internship
// @Description Creates a new internship listing owned by the authenticated user. Currency defaults to USD and the listing starts active.
// @Tags internships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateInternshipRequest true "Internship details"
// @Success 201 {object} dto.APIResponse{data=dto.InternshipResponse} "Internship created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Router /internships [post]
func (c *InternshipController) CreateInternship(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.CreateInternshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid internship create payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	internship, err := c.internshipService.CreateInternship(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("internshipID", internship.ID).
		Int64("userID", userID).
		Msg("Internship created")

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data: internship,
	})
}

// GetAllInternships lists internship listings
// @Summary List internships
// @Description Retrieves internship listings ordered by newest first with pagination
// @Tags internships
// @Produce json
// @Param page query int false "Page number (1-based)" default(1) minimum(1)
// @Param limit query int false "Page size (default: 20, max: 100)" default(20) minimum(1) maximum(100)
// @Success 200 {object} dto.APIResponse{data=dto.InternshipListResponse} "Internships retrieved successfully"
// @Router /internships [get]
func (c *InternshipController) GetAllInternships(ctx *gin.Context) {
	page, limit := helpers.ParsePaginationParams(ctx)

	internships, err := c.internshipService.ListInternships(ctx.Request.Context(), page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(internships))
}

// SearchInternships searches active listings with filters
// @Summary Search internships
// @Description Searches active listings. All provided filters are combined with AND; the free-text query matches title, description and company. Inactive listings never appear in results.
// @Tags internships
// @Produce json
// @Param q query string false "Free-text query over title, description and company"
// @Param company query string false "Company name substring"
// @Param location query string false "Location substring"
// @Param remote query bool false "Remote listings only when true, on-site only when false"
// @Param minSalary query number false "Minimum salary (inclusive)"
// @Param maxSalary query number false "Maximum salary (inclusive)"
// @Param skills query string false "Comma-separated skills; every one must match"
// @Param page query int false "Page number (1-based)" default(1) minimum(1)
// @Param limit query int false "Page size (default: 20, max: 100)" default(20) minimum(1) maximum(100)
// @Success 200 {object} dto.APIResponse{data=dto.InternshipListResponse} "Matching internships"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter parameters"
// @Router /internships/search [get]
func (c *InternshipController) SearchInternships(ctx *gin.Context) {
	var params dto.InternshipSearchRequest
	if err := ctx.ShouldBindQuery(&params); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid search parameters")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	internships, err := c.internshipService.SearchInternships(ctx.Request.Context(), &params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(internships))
}

// GetMyInternships lists the authenticated user's own listings
// @Summary List own internships
// @Description Retrieves the listings created by the authenticated user, newest first
// @Tags internships
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)" default(1) minimum(1)
// @Param limit query int false "Page size (default: 20, max: 100)" default(20) minimum(1) maximum(100)
// @Success 200 {object} dto.APIResponse{data=dto.InternshipListResponse} "Internships retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Router /internships/my [get]
func (c *InternshipController) GetMyInternships(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	page, limit := helpers.ParsePaginationParams(ctx)

	internships, err := c.internshipService.ListOwnInternships(ctx.Request.Context(), userID, page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(internships))
}

// GetInternshipByID retrieves a listing by ID
// @Summary Get internship by ID
// @Description Retrieves a specific listing by its ID. Inactive listings are still returned.
// @Tags internships
// @Produce json
// @Param id path int true "Internship ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.InternshipResponse} "Internship retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid internship ID format"
// @Failure 404 {object} dto.ErrorResponse "Internship not found"
// @Router /internships/{id} [get]
func (c *InternshipController) GetInternshipByID(ctx *gin.Context) {
	idParam := ctx.Param("id")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid internship ID")
		errorDetail = errorDetail.WithDetails("ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	internship, err := c.internshipService.GetInternshipByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(internship))
}

// UpdateInternship updates an owned listing
// @Summary Update internship
// @Description Partially updates a listing owned by the authenticated user. Omitted fields are left unchanged.
// @Tags internships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Internship ID" Format(int64) minimum(1)
// @Param request body dto.UpdateInternshipRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.InternshipResponse} "Internship updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Listing belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Internship not found"
// @Router /internships/{id} [put]
func (c *InternshipController) UpdateInternship(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	idParam := ctx.Param("id")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid internship ID")
		errorDetail = errorDetail.WithDetails("ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateInternshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid internship update payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	internship, err := c.internshipService.UpdateInternship(ctx.Request.Context(), userID, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("internshipID", id).
		Int64("userID", userID).
		Msg("Internship updated")

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(internship))
}

// DeleteInternship deletes an owned listing
// @Summary Delete internship
// @Description Deletes a listing owned by the authenticated user along with its applications
// @Tags internships
// @Produce json
// @Security BearerAuth
// @Param id path int true "Internship ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=string} "Internship deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid internship ID format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Listing belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Internship not found"
// @Router /internships/{id} [delete]
func (c *InternshipController) DeleteInternship(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	idParam := ctx.Param("id")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid internship ID")
		errorDetail = errorDetail.WithDetails("ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.internshipService.DeleteInternship(ctx.Request.Context(), userID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("internshipID", id).
		Int64("userID", userID).
		Msg("Internship deleted")

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Internship deleted successfully"))
}
