package services

import (
	"math"

	"dailydose/internal/models"
	"dailydose/internal/repositories"
)

// Stock levels below this count as low on the product dashboard.
const lowStockThreshold = 10

// OrderSummary is one dashboard row: the order plus its item count.
type OrderSummary struct {
	models.Order
	ItemCount int `json:"item_count"`
}

// OrdersReport is the order dashboard payload.
type OrdersReport struct {
	TotalOrders   int            `json:"totalOrders"`
	TotalRevenue  float64        `json:"totalRevenue"`
	AvgOrderValue float64        `json:"avgOrderValue"`
	Orders        []OrderSummary `json:"orders"`
}

// ProductsReport is the product dashboard payload.
type ProductsReport struct {
	TotalProducts      int              `json:"totalProducts"`
	LowStockProducts   int              `json:"lowStockProducts"`
	OutOfStockProducts int              `json:"outOfStockProducts"`
	TotalValue         float64          `json:"totalValue"`
	Products           []models.Product `json:"products"`
}

// ReportService aggregates orders and products for the admin dashboard.
type ReportService struct {
	orders   repositories.OrderRepository
	products repositories.ProductRepository
}

// NewReportService creates a new ReportService.
func NewReportService(orders repositories.OrderRepository, products repositories.ProductRepository) *ReportService {
	return &ReportService{
		orders:   orders,
		products: products,
	}
}

// OrdersReport returns order count, revenue and average order value over
// all persisted orders, newest first.
func (s *ReportService) OrdersReport() (*OrdersReport, error) {
	orders, err := s.orders.GetAll()
	if err != nil {
		return nil, err
	}

	report := &OrdersReport{
		Orders: make([]OrderSummary, 0, len(orders)),
	}
	for _, order := range orders {
		report.TotalRevenue += order.Total
		report.Orders = append(report.Orders, OrderSummary{
			Order:     order,
			ItemCount: len(order.Items),
		})
	}
	report.TotalOrders = len(orders)
	report.TotalRevenue = roundCents(report.TotalRevenue)
	if report.TotalOrders > 0 {
		report.AvgOrderValue = roundCents(report.TotalRevenue / float64(report.TotalOrders))
	}
	return report, nil
}

// ProductsReport returns catalog counts, stock alerts and total
// inventory value.
func (s *ReportService) ProductsReport() (*ProductsReport, error) {
	products, err := s.products.GetAll()
	if err != nil {
		return nil, err
	}

	report := &ProductsReport{
		TotalProducts: len(products),
		Products:      products,
	}
	for _, p := range products {
		if p.Stock == 0 {
			report.OutOfStockProducts++
		}
		if p.Stock < lowStockThreshold {
			report.LowStockProducts++
		}
		report.TotalValue += p.Price * float64(p.Stock)
	}
	report.TotalValue = roundCents(report.TotalValue)
	return report, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
