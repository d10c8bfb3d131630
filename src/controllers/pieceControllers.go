package controllers

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MUSEO/MUSEO-Backend/src/models"
	"github.com/MUSEO/MUSEO-Backend/src/services"
	"github.com/MUSEO/MUSEO-Backend/src/utils"
	"github.com/gin-gonic/gin"
)

type PieceController struct {
	service *services.PieceService
}

func NewPieceController(service *services.PieceService) *PieceController {
	return &PieceController{service: service}
}

func (c *PieceController) GetAllPieces(ctx *gin.Context) {
	result, err := c.service.GetAllPieces(ctx.Query("search"), parsePage(ctx))
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetPieceSummaries returns the lightweight listing rows
func (c *PieceController) GetPieceSummaries(ctx *gin.Context) {
	summaries, err := c.service.GetPieceSummaries()
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, summaries)
}

func (c *PieceController) GetPieceByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	piece, err := c.service.GetPieceByID(id)
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, piece)
}

// GetPieceFormData returns the classification selector list
func (c *PieceController) GetPieceFormData(ctx *gin.Context) {
	data, err := c.service.GetPieceFormData()
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, data)
}

func (c *PieceController) CreatePiece(ctx *gin.Context) {
	var piece models.PieceModel
	if err := ctx.ShouldBindJSON(&piece); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := c.service.CreatePiece(&piece)
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

func (c *PieceController) UpdatePiece(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	var piece models.PieceModel
	if err := ctx.ShouldBindJSON(&piece); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := c.service.UpdatePiece(id, &piece)
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

func (c *PieceController) DeletePiece(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	if err := c.service.DeletePiece(id); err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Piece deleted successfully"})
}

func (c *PieceController) CheckField(ctx *gin.Context) {
	exclude, ok := parseExclude(ctx)
	if !ok {
		return
	}
	valid, message := c.service.CheckField(ctx.Query("field"), ctx.Query("value"), exclude)
	renderCheck(ctx, valid, message)
}

// UploadImage stores a digitized photograph for a piece
func (c *PieceController) UploadImage(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	// Verify that the piece exists
	if _, err := c.service.GetPieceByID(id); err != nil {
		renderError(ctx, err)
		return
	}

	file, header, err := ctx.Request.FormFile("image")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "File must be an image"})
		return
	}

	uploadDir := "uploads/pieces"
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create upload directory"})
		return
	}

	// Generate unique filename
	filename := fmt.Sprintf("piece_%d_%d_%s", id, time.Now().Unix(), header.Filename)
	filePath := filepath.Join(uploadDir, filename)

	dst, err := os.Create(filePath)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save file"})
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save file"})
		return
	}

	image := models.PieceImageModel{
		PieceID:      id,
		Filename:     filename,
		OriginalName: header.Filename,
		FilePath:     filePath,
		ContentType:  header.Header.Get("Content-Type"),
		Size:         header.Size,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := c.service.SavePieceImage(&image); err != nil {
		// Clean up file if DB save fails
		os.Remove(filePath)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save image metadata"})
		return
	}

	ctx.JSON(http.StatusOK, image)
}

// LinkDriveImage registers a Google-Drive-hosted photograph for a piece
func (c *PieceController) LinkDriveImage(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if _, err := c.service.GetPieceByID(id); err != nil {
		renderError(ctx, err)
		return
	}

	var body struct {
		URL string `json:"url"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !utils.IsGoogleDriveURL(body.URL) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "La URL no es de Google Drive"})
		return
	}
	fileID, err := utils.ExtractFileIDFromURL(body.URL)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	image := models.PieceImageModel{
		PieceID:   id,
		Filename:  fileID,
		DriveURL:  &body.URL,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := c.service.SavePieceImage(&image); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save image metadata"})
		return
	}
	ctx.JSON(http.StatusOK, image)
}

// ServeImage streams a piece photograph, either from local storage with
// HTTP caching headers or from Google Drive when the image is hosted there
func (c *PieceController) ServeImage(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	image, err := c.service.GetImageByPieceID(id)
	if err != nil {
		renderError(ctx, err)
		return
	}

	if image.DriveURL != nil {
		fileID, err := utils.ExtractFileIDFromURL(*image.DriveURL)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		reader, name, err := utils.DownloadFileFromGoogleDrive(fileID)
		if err != nil {
			ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		defer reader.Close()

		ctx.Header("Content-Disposition", fmt.Sprintf(`inline; filename=%q`, name))
		ctx.Status(http.StatusOK)
		_, _ = io.Copy(ctx.Writer, reader)
		return
	}

	fileInfo, err := os.Stat(image.FilePath)
	if os.IsNotExist(err) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Image file not found"})
		return
	}

	// Cache for 1 year (images rarely change)
	lastModified := fileInfo.ModTime().UTC().Format("Mon, 02 Jan 2006 15:04:05 GMT")
	etag := fmt.Sprintf(`"%d-%d"`, image.Id, image.UpdatedAt.Unix())
	ctx.Header("Cache-Control", "public, max-age=31536000")
	ctx.Header("ETag", etag)
	ctx.Header("Last-Modified", lastModified)

	if match := ctx.GetHeader("If-None-Match"); match == etag {
		ctx.Status(http.StatusNotModified)
		return
	}
	if modSince := ctx.GetHeader("If-Modified-Since"); modSince != "" {
		if t, err := time.Parse("Mon, 02 Jan 2006 15:04:05 GMT", modSince); err == nil {
			if !fileInfo.ModTime().After(t) {
				ctx.Status(http.StatusNotModified)
				return
			}
		}
	}

	ctx.Header("Content-Type", image.ContentType)
	ctx.File(image.FilePath)
}

func (c *PieceController) DeleteImage(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	if err := c.service.DeletePieceImage(id); err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Image deleted successfully"})
}

// ImportPieces loads pieces in bulk from an uploaded Excel workbook
func (c *PieceController) ImportPieces(ctx *gin.Context) {
	file, _, err := ctx.Request.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	result, err := c.service.ImportPiecesFromExcel(file)
	if err != nil {
		if result != nil {
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"imported": result.Imported, "errors": result.Errors})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"imported": result.Imported, "errors": result.Errors})
}
