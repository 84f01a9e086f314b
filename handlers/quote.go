package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"rental_quote_app_go/config"
	"rental_quote_app_go/db"
	"rental_quote_app_go/models"
	"rental_quote_app_go/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthHandler reports service liveness
func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// decodeQuoteJSON parses the data_json form field into a QuoteRecord.
// Scalar values are coerced to strings so payloads like {"canone": 450}
// render the same as {"canone": "450"}; null and nested values are
// skipped like any other unknown input.
func decodeQuoteJSON(data string) (models.QuoteRecord, error) {
	dec := json.NewDecoder(strings.NewReader(data))
	dec.UseNumber()

	var raw map[string]interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}

	record := models.QuoteRecord{}
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			record[key] = v
		case json.Number:
			record[key] = v.String()
		case bool:
			record[key] = strconv.FormatBool(v)
		}
	}
	return record, nil
}

// GenerateQuoteHandler renders a rental quote PDF from multipart form data:
// data_json (JSON object of quote fields), vehicle_photo, supplier_file,
// header_image, footer_image (all optional files), output_name and send_to
// (optional form values). Caller data always wins over extracted fields.
func GenerateQuoteHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)

	record := models.QuoteRecord{}
	if dataJSON := c.FormValue("data_json"); dataJSON != "" {
		parsed, err := decodeQuoteJSON(dataJSON)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid data_json: %v", err))
		}
		record = parsed
	}

	// Temp uploads live only for the duration of this request.
	var tmpPaths []string
	defer func() {
		services.RemoveTempFiles(tmpPaths...)
	}()

	saveUpload := func(field, prefix string, validate func(fh *multipart.FileHeader) error) (string, error) {
		fileHeader, err := c.FormFile(field)
		if err != nil {
			return "", nil // field not supplied
		}
		if err := validate(fileHeader); err != nil {
			return "", echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		path, err := services.SaveTempUpload(fileHeader, cfg.TmpDir, prefix)
		if err != nil {
			return "", echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		tmpPaths = append(tmpPaths, path)
		return path, nil
	}

	photoPath, err := saveUpload("vehicle_photo", "vehicle", services.ValidateImageUpload)
	if err != nil {
		return err
	}

	supplierPath, err := saveUpload("supplier_file", "supplier", services.ValidateSupplierUpload)
	if err != nil {
		return err
	}
	if supplierPath != "" {
		record.Merge(services.ExtractQuoteFields(supplierPath))
	}

	headerOverride, err := saveUpload("header_image", "header", services.ValidateImageUpload)
	if err != nil {
		return err
	}
	footerOverride, err := saveUpload("footer_image", "footer", services.ValidateImageUpload)
	if err != nil {
		return err
	}

	assets, err := services.ResolveBrandAssets(cfg.AssetsDir, headerOverride, footerOverride)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	layout := services.DefaultLayout()
	geometry, err := services.ComputeGeometry(layout, assets.HeaderPath, assets.FooterPath)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	styles := services.BuildStyles(services.DefaultAccent())
	blocks := services.BuildContent(record, photoPath, styles, geometry.FirstPageUsableHeight, layout)

	pdf, err := services.RenderQuote(blocks, geometry, assets.HeaderPath, assets.FooterPath)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("PDF generation failed: %v", err))
	}

	outputName := c.FormValue("output_name")
	if outputName == "" {
		model := "Modello"
		if v, ok := record[models.FieldMakeModel]; ok && v != "" {
			model = v
		}
		outputName = fmt.Sprintf("Preventivo_Larini_%s_%s.pdf",
			strings.ReplaceAll(model, " ", "_"), time.Now().UTC().Format("2006-01-02"))
	}

	doc := models.QuoteDocument{
		ID:           uuid.New().String(),
		VehicleModel: record.Get(models.FieldMakeModel),
		OutputName:   outputName,
		FileSize:     int64(len(pdf)),
		Status:       models.QuoteStatusRendered,
	}

	if services.Archive != nil {
		key := services.QuoteArchiveKey(time.Now(), outputName)
		if _, err := services.Archive.Put(c.Request().Context(), key, pdf, "application/pdf"); err != nil {
			log.Printf("[WARNING] Failed to archive quote %s: %v", outputName, err)
		} else {
			doc.StorageKey = key
			doc.Status = models.QuoteStatusArchived
		}
	}

	if sendTo := c.FormValue("send_to"); sendTo != "" {
		email := services.BuildQuoteEmail(sendTo, record.Get(models.FieldMakeModel), outputName, pdf)
		if err := services.SendQuoteEmail(cfg, email); err != nil {
			log.Printf("[WARNING] Failed to email quote %s to %s: %v", outputName, sendTo, err)
		} else {
			doc.EmailedTo = sendTo
			doc.Status = models.QuoteStatusEmailed
		}
	}

	if db.DB != nil {
		if err := db.DB.Create(&doc).Error; err != nil {
			log.Printf("[WARNING] Failed to record quote %s: %v", outputName, err)
		}
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, outputName))
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}

// ListQuotesHandler returns the most recent rendered quotes
func ListQuotesHandler(c echo.Context) error {
	var quotes []models.QuoteDocument
	if err := db.DB.Order("created_at DESC").Limit(50).Find(&quotes).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load quotes")
	}
	return c.JSON(http.StatusOK, quotes)
}
