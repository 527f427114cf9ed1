package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/village-banking/backend/internal/application/usecase/member"
	"github.com/village-banking/backend/internal/domain/entity"
	domainerror "github.com/village-banking/backend/internal/domain/error"
	"github.com/village-banking/backend/internal/integration/entrypoint/dto"
)

// MemberController handles member register endpoints.
type MemberController struct {
	listUseCase   *member.ListMembersUseCase
	createUseCase *member.CreateMemberUseCase
	getUseCase    *member.GetMemberUseCase
	updateUseCase *member.UpdateMemberUseCase
	deleteUseCase *member.DeleteMemberUseCase
}

// NewMemberController creates a new member controller instance.
func NewMemberController(
	listUseCase *member.ListMembersUseCase,
	createUseCase *member.CreateMemberUseCase,
	getUseCase *member.GetMemberUseCase,
	updateUseCase *member.UpdateMemberUseCase,
	deleteUseCase *member.DeleteMemberUseCase,
) *MemberController {
	return &MemberController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /members requests.
func (c *MemberController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context(), member.ListMembersInput{})
	if err != nil {
		c.handleMemberError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMemberListResponse(output.Members))
}

// Create handles POST /members requests.
func (c *MemberController) Create(ctx *gin.Context) {
	var req dto.CreateMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := member.CreateMemberInput{
		Name:       req.Name,
		NationalID: req.NationalID,
		Phone:      req.Phone,
	}

	if req.JoinDate != nil {
		joinDate, err := time.Parse("2006-01-02", *req.JoinDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid join date format, expected YYYY-MM-DD",
			})
			return
		}
		input.JoinDate = &joinDate
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleMemberError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToMemberResponse(output.Member))
}

// Get handles GET /members/:id requests.
func (c *MemberController) Get(ctx *gin.Context) {
	memberID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), member.GetMemberInput{MemberID: memberID})
	if err != nil {
		c.handleMemberError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMemberResponse(output.Member))
}

// Update handles PATCH /members/:id requests.
func (c *MemberController) Update(ctx *gin.Context) {
	memberID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := member.UpdateMemberInput{
		MemberID:   memberID,
		Name:       req.Name,
		NationalID: req.NationalID,
		Phone:      req.Phone,
	}

	if req.Status != nil {
		status := entity.MemberStatus(*req.Status)
		input.Status = &status
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleMemberError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMemberResponse(output.Member))
}

// Delete handles DELETE /members/:id requests.
func (c *MemberController) Delete(ctx *gin.Context) {
	memberID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), member.DeleteMemberInput{MemberID: memberID})
	if err != nil {
		c.handleMemberError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleMemberError maps member errors to HTTP responses.
func (c *MemberController) handleMemberError(ctx *gin.Context, err error) {
	var memberErr *domainerror.MemberError
	if errors.As(err, &memberErr) {
		ctx.JSON(statusForErrorCode(string(memberErr.Code)), dto.ErrorResponse{
			Error: memberErr.Message,
			Code:  string(memberErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// parseIDParam parses the :id URL parameter, writing a 400 response on failure.
func parseIDParam(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}
