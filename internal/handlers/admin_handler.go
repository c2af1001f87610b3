package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"storefront/internal/models"
	"storefront/internal/repository"
	"storefront/internal/storage"
	"storefront/internal/view"
)

const maxUploadBytes = 10 << 20 // 10 MiB multipart memory limit

// AdminHandler serves the product upload form and its submission. The admin
// surface carries no authentication.
type AdminHandler struct {
	uploader storage.Uploader
	products repository.ProductRepository
	view     *view.Renderer
	logger   *slog.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(uploader storage.Uploader, products repository.ProductRepository, view *view.Renderer, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uploader: uploader,
		products: products,
		view:     view,
		logger:   logger,
	}
}

// ShowUploadForm handles GET /admin/upload
func (h *AdminHandler) ShowUploadForm(w http.ResponseWriter, r *http.Request) {
	h.view.Render(w, http.StatusOK, "admin_upload", nil)
}

// UploadResponse is the JSON body returned on a successful upload.
type UploadResponse struct {
	Success bool `json:"success"`
}

// Upload handles POST /admin/upload: stores the image, then inserts the
// product row (active, not featured) with the returned URL.
func (h *AdminHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid upload request", h.logger)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil || header.Filename == "" {
		WriteError(w, http.StatusBadRequest, "Image file is required", h.logger)
		return
	}
	defer file.Close()

	name := r.FormValue("name")
	if name == "" {
		WriteError(w, http.StatusBadRequest, "Product name is required", h.logger)
		return
	}

	price := decimal.Zero
	if raw := r.FormValue("price"); raw != "" {
		price, err = decimal.NewFromString(raw)
		if err != nil || price.IsNegative() {
			WriteError(w, http.StatusBadRequest, "Invalid price", h.logger)
			return
		}
	}

	stock := 0
	if raw := r.FormValue("stock_quantity"); raw != "" {
		stock, err = strconv.Atoi(raw)
		if err != nil || stock < 0 {
			WriteError(w, http.StatusBadRequest, "Invalid stock quantity", h.logger)
			return
		}
	}

	imageURL, err := h.uploader.Upload(r.Context(), file, "products", header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		h.logger.Error("product image upload failed", "filename", header.Filename, "error", err)
		WriteError(w, http.StatusInternalServerError, MsgInternalError, h.logger)
		return
	}

	product := &models.Product{
		Name:          name,
		Description:   r.FormValue("description"),
		Price:         price,
		Category:      r.FormValue("category"),
		StockQuantity: stock,
		ImageURL:      imageURL,
		Active:        true,
		Featured:      false,
	}

	id, err := h.products.Insert(r.Context(), product)
	if err != nil {
		h.logger.Error("product insert failed", "name", name, "error", err)
		WriteError(w, http.StatusInternalServerError, MsgInternalError, h.logger)
		return
	}

	h.logger.Info("product created", "product_id", id, "name", name)
	WriteJSON(w, http.StatusOK, UploadResponse{Success: true}, h.logger)
}
