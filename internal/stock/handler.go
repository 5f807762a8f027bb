package stock

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"stock-tracker-backend/internal/auth"
	"stock-tracker-backend/internal/models"
	"stock-tracker-backend/internal/respond"

	"github.com/gofiber/fiber/v2"
)

type UpdateStockRequest struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	StockAwal    int    `json:"stock_awal"`
	KeluarManual int    `json:"keluar_manual"`
	KeluarPos    int    `json:"keluar_pos"`
	DaysToOrder  *int   `json:"days_to_order"` // absent keeps the stored value
}

type UpdateDaysRequest struct {
	DaysToOrder *int `json:"days_to_order"`
}

type CreateTransactionRequest struct {
	ProductID       uint                   `json:"product_id"`
	TransactionType models.TransactionType `json:"transaction_type"`
	Quantity        int                    `json:"quantity"`
	Reason          string                 `json:"reason"`
	ReferenceNumber string                 `json:"reference_number"`
	CreatedBy       string                 `json:"created_by"`
}

// GET /api/stock
func ListStockHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		products, err := svc.ListStock(c.Context())
		if err != nil {
			return err
		}
		return respond.OK(c, products)
	}
}

// PUT /api/stock/update
func UpdateStockHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body UpdateStockRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		product, err := svc.UpdateStock(c.Context(), UpdateStockInput{
			ID:           body.ID,
			Name:         strings.TrimSpace(body.Name),
			StockAwal:    body.StockAwal,
			KeluarManual: body.KeluarManual,
			KeluarPos:    body.KeluarPos,
			DaysToOrder:  body.DaysToOrder,
			UpdatedBy:    auth.Username(c),
		})
		if err != nil {
			return err
		}
		return respond.OKMessage(c, product, "Stock updated successfully")
	}
}

// PUT /api/stock/update-days
func UpdateDaysHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body UpdateDaysRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.DaysToOrder == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Missing required field: days_to_order")
		}

		products, err := svc.UpdateDaysForAll(c.Context(), *body.DaysToOrder)
		if err != nil {
			return err
		}
		return respond.OK(c, products)
	}
}

// POST /api/stock/rollover
func RolloverHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		exported, updated, err := svc.PerformRollover(c.Context(), auth.Username(c))
		if err != nil {
			return err
		}
		return respond.OKMessage(c, fiber.Map{
			"exportedData": exported,
			"updatedData":  updated,
		}, "Rollover completed successfully")
	}
}

// GET /api/stock/daily-rollover
func RolloverStatusHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status, err := svc.GetRolloverStatus(c.Context())
		if err != nil {
			return err
		}
		return respond.OK(c, status)
	}
}

// GET /api/stock/transactions?page=1&limit=50&product_id=&transaction_type=&start_date=&end_date=
func ListTransactionsHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter := TransactionFilter{
			ProductID:       uint(c.QueryInt("product_id", 0)),
			TransactionType: models.TransactionType(c.Query("transaction_type")),
			StartDate:       c.Query("start_date"),
			EndDate:         c.Query("end_date"),
			Page:            c.QueryInt("page", 1),
			Limit:           c.QueryInt("limit", DefaultPageLimit),
		}

		page, err := svc.ListTransactions(c.Context(), filter)
		if err != nil {
			return err
		}
		return respond.OK(c, page)
	}
}

// POST /api/stock/transaction
func CreateTransactionHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateTransactionRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		createdBy := body.CreatedBy
		if createdBy == "" {
			createdBy = auth.Username(c)
		}

		entry, err := svc.CreateTransaction(c.Context(), CreateTransactionInput{
			ProductID:       body.ProductID,
			TransactionType: body.TransactionType,
			Quantity:        body.Quantity,
			Reason:          body.Reason,
			ReferenceNumber: body.ReferenceNumber,
			CreatedBy:       createdBy,
		})
		if err != nil {
			return err
		}
		return respond.Created(c, entry, "Transaction created successfully")
	}
}

// GET /api/stock/export
func ExportCSVHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		products, err := svc.ListStock(c.Context())
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		if err := WriteCSV(&buf, products); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to export stock data")
		}

		filename := fmt.Sprintf("stock-%s.csv", time.Now().Format("2006-01-02"))
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
		return c.Send(buf.Bytes())
	}
}
