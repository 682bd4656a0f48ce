package handler

import (
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/Sadman-26/Metro-Rail-Project/internal/config"
	"github.com/Sadman-26/Metro-Rail-Project/internal/lostfound"
	"github.com/Sadman-26/Metro-Rail-Project/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type lostItemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Status      string `json:"status"`
	ImageURL    string `json:"image_url"`
}

type lostItemUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	Status      *string `json:"status"`
	ImageURL    *string `json:"image_url"`
}

type lostItemResponse struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	ImageURL        *string   `json:"image_url"`
	DisplayImageURL string    `json:"display_image_url"`
	Location        string    `json:"location"`
	Status          string    `json:"status"`
	PostedBy        uint      `json:"posted_by"`
	PostedByName    string    `json:"posted_by_name"`
	CreatedAt       time.Time `json:"created_at"`
}

func newLostItemResponse(item *models.LostItem) lostItemResponse {
	return lostItemResponse{
		ID:              item.ID,
		Title:           item.Title,
		Description:     item.Description,
		ImageURL:        item.ImageURL,
		DisplayImageURL: lostfound.ResolveImageURL(item.ImageURL),
		Location:        item.Location,
		Status:          item.Status,
		PostedBy:        item.PostedByID,
		PostedByName:    item.PostedBy.DisplayName(),
		CreatedAt:       item.CreatedAt,
	}
}

// ListLostItems returns every item; no authentication needed.
func (h *Handler) ListLostItems(c *gin.Context) {
	items, err := h.LostFound.List()
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]lostItemResponse, 0, len(items))
	for i := range items {
		out = append(out, newLostItemResponse(&items[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) GetLostItem(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		writeError(c, err)
		return
	}
	item, err := h.LostFound.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newLostItemResponse(item))
}

// CreateLostItem accepts either a JSON body or a multipart form. A
// multipart form may carry an "image_file" upload, which is written to
// the media directory and persisted as a bare filename; an explicit
// image_url string is persisted verbatim. Whatever the client put in a
// poster field is never read.
func (h *Handler) CreateLostItem(c *gin.Context) {
	input, err := h.lostItemInput(c)
	if err != nil {
		writeError(c, err)
		return
	}
	item, err := h.LostFound.Create(caller(c), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newLostItemResponse(item))
}

func (h *Handler) lostItemInput(c *gin.Context) (lostfound.CreateInput, error) {
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		input := lostfound.CreateInput{
			Title:       c.PostForm("title"),
			Description: c.PostForm("description"),
			Location:    c.PostForm("location"),
			Status:      c.PostForm("status"),
			ImageRef:    c.PostForm("image_url"),
		}
		if file, err := c.FormFile("image_file"); err == nil {
			// Uploaded files get a uuid prefix so repeated uploads of
			// the same filename cannot clobber each other.
			name := uuid.New().String()[:8] + "_" + filepath.Base(file.Filename)
			if err := c.SaveUploadedFile(file, filepath.Join(config.MediaDir, name)); err != nil {
				return lostfound.CreateInput{}, err
			}
			input.ImageRef = name
		}
		return input, nil
	}

	var req lostItemRequest
	if err := bindJSON(c, &req); err != nil {
		return lostfound.CreateInput{}, err
	}
	return lostfound.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Status:      req.Status,
		ImageRef:    req.ImageURL,
	}, nil
}

func (h *Handler) UpdateLostItem(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		writeError(c, err)
		return
	}
	var req lostItemUpdateRequest
	if err := bindJSON(c, &req); err != nil {
		writeError(c, err)
		return
	}
	item, err := h.LostFound.Update(id, caller(c), lostfound.UpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Status:      req.Status,
		ImageRef:    req.ImageURL,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newLostItemResponse(item))
}

func (h *Handler) DeleteLostItem(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		writeError(c, err)
		return
	}
	if err := h.LostFound.Delete(id, caller(c)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
