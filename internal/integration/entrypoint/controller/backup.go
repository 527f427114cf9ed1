package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/village-banking/backend/internal/application/usecase/backup"
	domainerror "github.com/village-banking/backend/internal/domain/error"
	"github.com/village-banking/backend/internal/integration/entrypoint/dto"
)

// BackupController handles bulk data endpoints: export, import, clear and
// demo seeding.
type BackupController struct {
	exportUseCase *backup.ExportDataUseCase
	importUseCase *backup.ImportDataUseCase
	clearUseCase  *backup.ClearDataUseCase
	seedUseCase   *backup.SeedDemoDataUseCase
}

// NewBackupController creates a new backup controller instance.
func NewBackupController(
	exportUseCase *backup.ExportDataUseCase,
	importUseCase *backup.ImportDataUseCase,
	clearUseCase *backup.ClearDataUseCase,
	seedUseCase *backup.SeedDemoDataUseCase,
) *BackupController {
	return &BackupController{
		exportUseCase: exportUseCase,
		importUseCase: importUseCase,
		clearUseCase:  clearUseCase,
		seedUseCase:   seedUseCase,
	}
}

// Export handles GET /backup/export requests. The snapshot is returned as the
// response body so the client can store it off-device.
func (c *BackupController) Export(ctx *gin.Context) {
	output, err := c.exportUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleBackupError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output.Snapshot)
}

// Import handles POST /backup/import requests. The body is a previously
// exported snapshot; the restore replaces the whole store.
func (c *BackupController) Import(ctx *gin.Context) {
	var snapshot backup.Snapshot
	if err := ctx.ShouldBindJSON(&snapshot); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid snapshot body: " + err.Error(),
		})
		return
	}

	_, err := c.importUseCase.Execute(ctx.Request.Context(), backup.ImportDataInput{Snapshot: &snapshot})
	if err != nil {
		c.handleBackupError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"imported": true})
}

// Clear handles POST /backup/clear requests.
func (c *BackupController) Clear(ctx *gin.Context) {
	_, err := c.clearUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleBackupError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"cleared": true})
}

// Seed handles POST /backup/seed requests.
func (c *BackupController) Seed(ctx *gin.Context) {
	output, err := c.seedUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleBackupError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"members":      output.Members,
		"transactions": output.Transactions,
		"loans":        output.Loans,
		"cycles":       output.Cycles,
	})
}

// handleBackupError maps backup errors to HTTP responses.
func (c *BackupController) handleBackupError(ctx *gin.Context, err error) {
	var backupErr *domainerror.BackupError
	if errors.As(err, &backupErr) {
		ctx.JSON(statusForErrorCode(string(backupErr.Code)), dto.ErrorResponse{
			Error: backupErr.Message,
			Code:  string(backupErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
