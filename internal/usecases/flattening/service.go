package flattening

import (
	"sort"
	"strings"

	goodtilldomain "github.com/vfg2006/goodtill-sales-archiver/infrastructure/integrator/goodtill/domain"
	"github.com/vfg2006/goodtill-sales-archiver/internal/domain"
	"github.com/vfg2006/goodtill-sales-archiver/pkg/utils"
)

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Flatten converts raw sales into one FlatRecord per line item. The input may
// be a list of sales or an object wrapping one under "data"; both produce the
// same records. A sale without line items contributes nothing.
func (s *Service) Flatten(payload any) ([]domain.FlatRecord, error) {
	sales, ok := goodtilldomain.SalesFromPayload(payload)
	if !ok {
		return nil, ErrMalformedPayload
	}

	if len(sales) == 0 {
		return nil, ErrNoSalesData
	}

	records := make([]domain.FlatRecord, 0, len(sales))
	for _, sale := range sales {
		records = append(records, flattenSale(sale)...)
	}

	return records, nil
}

func flattenSale(sale goodtilldomain.Sale) []domain.FlatRecord {
	details := sale.Details()
	outlet := sale.Object("outlet")
	register := sale.Object("register")
	paymentMethods, paymentTotal := paymentSummary(sale.Payments())

	items := sale.Items()
	records := make([]domain.FlatRecord, 0, len(items))

	for _, item := range items {
		records = append(records, domain.FlatRecord{
			SaleID:        utils.Stringify(sale.Field("id")),
			OutletID:      utils.Stringify(sale.Field("outlet_id")),
			OutletName:    utils.Stringify(outlet["outlet_name"]),
			RegisterID:    utils.Stringify(sale.Field("register_id")),
			RegisterName:  utils.Stringify(register["register_name"]),
			StaffID:       utils.Stringify(sale.Field("staff_id")),
			CustomerID:    utils.Stringify(sale.Field("customer_id")),
			OrderNo:       utils.Stringify(sale.Field("order_no")),
			SaleType:      utils.Stringify(sale.Field("sale_type")),
			OrderStatus:   utils.Stringify(sale.Field("order_status")),
			ReceiptNo:     utils.Stringify(sale.Field("receipt_no")),
			SalesDateTime: utils.TimeOrNil(sale.Field("sales_date_time")),

			ItemID:             utils.Stringify(item.Field("id")),
			ProductID:          utils.Stringify(item.Field("product_id")),
			ProductName:        utils.Stringify(item.Field("product_name")),
			Quantity:           utils.FloatOrNil(item.Field("quantity")),
			PriceIncVATPerItem: utils.FloatOrNil(item.Field("price_inc_vat_per_item")),

			VATRate:   utils.FloatOrNil(item.Field("vat_rate")),
			VATRateID: utils.Stringify(item.Field("vat_rate_id")),

			LineTotalAfterLineDiscount:    utils.FloatOrNil(item.Field("line_total_after_line_discount")),
			LineSubtotalAfterLineDiscount: utils.FloatOrNil(item.Field("line_subtotal_after_line_discount")),
			LineVATAfterLineDiscount:      utils.FloatOrNil(item.Field("line_vat_after_line_discount")),
			LineTotalAfterDiscount:        utils.FloatOrNil(item.Field("line_total_after_discount")),
			LineSubtotalAfterDiscount:     utils.FloatOrNil(item.Field("line_subtotal_after_discount")),
			LineVATAfterDiscount:          utils.FloatOrNil(item.Field("line_vat_after_discount")),

			HasDiscount:          utils.Stringify(item.Field("has_discount")),
			DiscountAmount:       utils.FloatOrNil(item.Field("discount_amount")),
			DiscountIsPercentage: utils.Stringify(item.Field("discount_is_percentage")),
			DiscountID:           utils.Stringify(item.Field("discount_id")),

			SaleQuantityTotal: utils.Stringify(details["quantity"]),
			SaleTotal:         utils.Stringify(details["total"]),
			SaleSubtotal:      utils.Stringify(details["total_ex_vat"]),
			SaleVATTotal:      utils.Stringify(details["total_vat"]),
			SaleLineDiscount:  utils.Stringify(details["line_discount"]),

			PaymentMethods: paymentMethods,
			PaymentTotal:   &paymentTotal,

			ItemNotes:  utils.Stringify(item.Field("item_notes")),
			SequenceNo: utils.Stringify(item.Field("sequence_no")),
			CreatedAt:  utils.TimeOrNil(item.Field("created_at")),
		})
	}

	return records
}

// paymentSummary joins the payment-method names with semicolons and sums
// their amounts, treating a missing amount as 0. Names are sorted: map
// iteration order is not stable, and archive rows must be deterministic.
func paymentSummary(payments map[string]any) (string, float64) {
	names := make([]string, 0, len(payments))
	var total float64

	for name, payment := range payments {
		names = append(names, name)

		if m, ok := payment.(map[string]any); ok {
			total += utils.FloatOrZero(m["payment_total"])
		}
	}

	sort.Strings(names)

	return strings.Join(names, ";"), total
}
