package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sppg-mbg/inventaris-api/internal/application/dto"
	"github.com/sppg-mbg/inventaris-api/internal/application/ledger"
	"github.com/sppg-mbg/inventaris-api/internal/domain/repository"
)

// LedgerHandler menangani penerimaan dan pengeluaran stok.
type LedgerHandler struct {
	ledgerUC *ledger.LedgerUseCase
	queryUC  *ledger.QueryUseCase
}

// NewLedgerHandler membangun handler ledger.
func NewLedgerHandler(ledgerUC *ledger.LedgerUseCase, queryUC *ledger.QueryUseCase) *LedgerHandler {
	return &LedgerHandler{ledgerUC: ledgerUC, queryUC: queryUC}
}

// CreateReceipt godoc
// @Summary      Catat penerimaan barang (stok bertambah)
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReceiptRequest  true  "bahan_id, jumlah, supplier, ..."
// @Success      201   {object}  dto.ReceiptResultDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/receipts [post]
func (h *LedgerHandler) CreateReceipt(c *fiber.Ctx) error {
	var in dto.CreateReceiptRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "body tidak valid"})
	}
	out, err := h.ledgerUC.ApplyReceipt(c.Context(), GetUserID(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListReceipts godoc
// @Summary      Daftar penerimaan
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Param        status      query  string  false  "draft|disetujui"
// @Success      200  {array}  dto.ReceiptDTO
// @Router       /api/receipts [get]
func (h *LedgerHandler) ListReceipts(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	out, err := h.queryUC.ListReceipts(repository.ReceiptFilter{
		StartDate: parseDateQuery(c.Query("start_date")),
		EndDate:   parseDateQuery(c.Query("end_date")),
		Status:    c.Query("status"),
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// NextReceiptNumber godoc
// @Summary      Nomor dokumen penerimaan berikutnya (indikatif untuk form)
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/receipts/next-number [get]
func (h *LedgerHandler) NextReceiptNumber(c *fiber.Ctx) error {
	no, err := h.queryUC.NextReceiptNumber()
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(fiber.Map{"no_penerimaan": no})
}

// GetReceipt godoc
// @Summary      Detail penerimaan
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID penerimaan"
// @Success      200  {object}  dto.ReceiptDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/receipts/{id} [get]
func (h *LedgerHandler) GetReceipt(c *fiber.Ctx) error {
	out, err := h.queryUC.GetReceipt(c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// CreateIssue godoc
// @Summary      Catat pengeluaran barang (stok berkurang)
// @Description  Ditolak 409 bila stok tidak mencukupi; saldo tidak berubah.
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateIssueRequest  true  "bahan_id, jumlah, jenis_tujuan, ..."
// @Success      201   {object}  dto.IssueResultDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/issues [post]
func (h *LedgerHandler) CreateIssue(c *fiber.Ctx) error {
	var in dto.CreateIssueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "body tidak valid"})
	}
	out, err := h.ledgerUC.ApplyIssue(c.Context(), GetUserID(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListIssues godoc
// @Summary      Daftar pengeluaran
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        start_date    query  string  false  "YYYY-MM-DD"
// @Param        end_date      query  string  false  "YYYY-MM-DD"
// @Param        jenis_tujuan  query  string  false  "sekolah|posyandu|puskesmas|rumah_sakit|lainnya"
// @Success      200  {array}  dto.IssueDTO
// @Router       /api/issues [get]
func (h *LedgerHandler) ListIssues(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	out, err := h.queryUC.ListIssues(repository.IssueFilter{
		StartDate:   parseDateQuery(c.Query("start_date")),
		EndDate:     parseDateQuery(c.Query("end_date")),
		Status:      c.Query("status"),
		JenisTujuan: c.Query("jenis_tujuan"),
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// NextIssueNumber godoc
// @Summary      Nomor dokumen pengeluaran berikutnya (indikatif untuk form)
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/issues/next-number [get]
func (h *LedgerHandler) NextIssueNumber(c *fiber.Ctx) error {
	no, err := h.queryUC.NextIssueNumber()
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(fiber.Map{"no_pengeluaran": no})
}

// GetIssue godoc
// @Summary      Detail pengeluaran
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID pengeluaran"
// @Success      200  {object}  dto.IssueDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/issues/{id} [get]
func (h *LedgerHandler) GetIssue(c *fiber.Ctx) error {
	out, err := h.queryUC.GetIssue(c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// parseDateQuery mem-parse query tanggal YYYY-MM-DD; nil bila kosong
// atau tidak valid.
func parseDateQuery(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}
