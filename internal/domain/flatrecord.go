package domain

import (
	"strconv"
	"time"

	"github.com/vfg2006/goodtill-sales-archiver/pkg/utils"
)

// Area identifies which till a record came from.
type Area string

const (
	AreaFood Area = "Food"
	AreaBar  Area = "Bar"
)

// Areas lists the tills in archive order.
var Areas = []Area{AreaFood, AreaBar}

// FlatRecord is one archive row: a single line item enriched with its parent
// sale's scalar fields and payment summary. The field set is fixed; absent
// source keys default to the empty string for text and nil for numeric and
// temporal fields.
//
// Numeric pointers are nil for both absent and unparsable values, so a bad
// cell never aborts a run. The sale_* totals except sales_date_time stay as
// text: the archive has always carried them verbatim.
type FlatRecord struct {
	// Sale information
	SaleID        string
	OutletID      string
	OutletName    string
	RegisterID    string
	RegisterName  string
	StaffID       string
	CustomerID    string
	OrderNo       string
	SaleType      string
	OrderStatus   string
	ReceiptNo     string
	SalesDateTime *time.Time

	// Item information
	ItemID             string
	ProductID          string
	ProductName        string
	Quantity           *float64
	PriceIncVATPerItem *float64

	// VAT information
	VATRate   *float64
	VATRateID string

	// Line totals, after line discount and after all discounts
	LineTotalAfterLineDiscount    *float64
	LineSubtotalAfterLineDiscount *float64
	LineVATAfterLineDiscount      *float64
	LineTotalAfterDiscount        *float64
	LineSubtotalAfterDiscount     *float64
	LineVATAfterDiscount          *float64

	// Discount information
	HasDiscount          string
	DiscountAmount       *float64
	DiscountIsPercentage string
	DiscountID           string

	// Sale-level totals
	SaleQuantityTotal string
	SaleTotal         string
	SaleSubtotal      string
	SaleVATTotal      string
	SaleLineDiscount  string

	// Payment summary
	PaymentMethods string
	PaymentTotal   *float64

	// Additional metadata
	ItemNotes  string
	SequenceNo string
	CreatedAt  *time.Time

	Area Area
}

// CSVHeader returns the archive column names, in column order.
func CSVHeader() []string {
	return []string{
		"sale_id",
		"outlet_id",
		"outlet_name",
		"register_id",
		"register_name",
		"staff_id",
		"customer_id",
		"order_no",
		"sale_type",
		"order_status",
		"receipt_no",
		"sales_date_time",
		"item_id",
		"product_id",
		"product_name",
		"quantity",
		"price_inc_vat_per_item",
		"vat_rate",
		"vat_rate_id",
		"line_total_after_line_discount",
		"line_subtotal_after_line_discount",
		"line_vat_after_line_discount",
		"line_total_after_discount",
		"line_subtotal_after_discount",
		"line_vat_after_discount",
		"has_discount",
		"discount_amount",
		"discount_is_percentage",
		"discount_id",
		"sale_quantity_total",
		"sale_total",
		"sale_subtotal",
		"sale_vat_total",
		"sale_line_discount",
		"payment_methods",
		"payment_total",
		"item_notes",
		"sequence_no",
		"created_at",
		"Area",
	}
}

// CSVRow renders the record in header order. Nil numerics and timestamps
// render as empty cells.
func (r FlatRecord) CSVRow() []string {
	return []string{
		r.SaleID,
		r.OutletID,
		r.OutletName,
		r.RegisterID,
		r.RegisterName,
		r.StaffID,
		r.CustomerID,
		r.OrderNo,
		r.SaleType,
		r.OrderStatus,
		r.ReceiptNo,
		formatTime(r.SalesDateTime),
		r.ItemID,
		r.ProductID,
		r.ProductName,
		formatFloat(r.Quantity),
		formatFloat(r.PriceIncVATPerItem),
		formatFloat(r.VATRate),
		r.VATRateID,
		formatFloat(r.LineTotalAfterLineDiscount),
		formatFloat(r.LineSubtotalAfterLineDiscount),
		formatFloat(r.LineVATAfterLineDiscount),
		formatFloat(r.LineTotalAfterDiscount),
		formatFloat(r.LineSubtotalAfterDiscount),
		formatFloat(r.LineVATAfterDiscount),
		r.HasDiscount,
		formatFloat(r.DiscountAmount),
		r.DiscountIsPercentage,
		r.DiscountID,
		r.SaleQuantityTotal,
		r.SaleTotal,
		r.SaleSubtotal,
		r.SaleVATTotal,
		r.SaleLineDiscount,
		r.PaymentMethods,
		formatFloat(r.PaymentTotal),
		r.ItemNotes,
		r.SequenceNo,
		formatTime(r.CreatedAt),
		string(r.Area),
	}
}

func formatFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(utils.DateTimeLayout)
}
