package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-concierge/models"
	"github.com/yeremiapane/restaurant-concierge/services"
	"github.com/yeremiapane/restaurant-concierge/utils"
)

type OrderController struct {
	DB       *gorm.DB
	Notifier services.Notifier
}

func NewOrderController(db *gorm.DB, notifier services.Notifier) *OrderController {
	return &OrderController{DB: db, Notifier: notifier}
}

type orderItemReq struct {
	MenuID   *uint   `json:"menu_id"`
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"gte=0"`
	Quantity int     `json:"quantity" binding:"required,gt=0"`
}

type createOrderReq struct {
	CustomerName string         `json:"customer_name" binding:"required"`
	TableNumber  int            `json:"table_number" binding:"required,gt=0"`
	Items        []orderItemReq `json:"items" binding:"required,min=1,dive"`
}

// GetAllOrders -> list orders beserta items, terbaru dulu
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	var orders []models.Order
	if err := oc.DB.WithContext(c.Request.Context()).
		Preload("OrderItems").
		Order("created_at DESC").Order("id DESC").
		Find(&orders).Error; err != nil {
		oc.internalError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// GetOrderByID -> detail 1 order
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var order models.Order
	if err := oc.DB.WithContext(c.Request.Context()).Preload("OrderItems").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondErrorKind(c, http.StatusNotFound, string(services.KindNotFound), "order not found")
			return
		}
		oc.internalError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// CreateOrder -> status awal pending, total dihitung dari item
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var body createOrderReq
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBindError(c, err)
		return
	}

	order := models.Order{
		CustomerName: strings.TrimSpace(body.CustomerName),
		TableNumber:  body.TableNumber,
		Status:       models.OrderStatusPending,
	}
	for _, item := range body.Items {
		order.OrderItems = append(order.OrderItems, models.OrderItem{
			MenuID:   item.MenuID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}
	order.TotalAmount = order.CalculateTotal()

	// order + items dalam satu transaksi (gorm membuat association otomatis)
	if err := oc.DB.WithContext(c.Request.Context()).Create(&order).Error; err != nil {
		oc.internalError(c, err)
		return
	}

	utils.InfoLogger.Printf("Order %s created, total %s", order.GenerateOrderIdentifier(), utils.FormatPrice(order.TotalAmount))
	oc.broadcast(services.EventOrderCreate, order)
	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// UpdateOrder -> update status order
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if !models.IsValidOrderStatus(req.Status) {
		utils.RespondErrorKind(c, http.StatusBadRequest, string(services.KindValidation),
			"status must be one of [pending preparing ready completed]")
		return
	}

	db := oc.DB.WithContext(c.Request.Context())
	var order models.Order
	if err := db.Preload("OrderItems").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondErrorKind(c, http.StatusNotFound, string(services.KindNotFound), "order not found")
			return
		}
		oc.internalError(c, err)
		return
	}

	order.Status = req.Status
	if err := db.Model(&models.Order{}).Where("id = ?", order.ID).Update("status", req.Status).Error; err != nil {
		oc.internalError(c, err)
		return
	}

	utils.InfoLogger.Printf("Order %s -> %s", order.GenerateOrderIdentifier(), order.Status)
	oc.broadcast(services.EventOrderUpdate, order)
	utils.RespondJSON(c, http.StatusOK, "Order updated", order)
}

func (oc *OrderController) broadcast(event string, order models.Order) {
	if oc.Notifier != nil {
		oc.Notifier.Broadcast(event, order)
	}
}

func (oc *OrderController) internalError(c *gin.Context, err error) {
	utils.ErrorLogger.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	utils.RespondErrorKind(c, http.StatusInternalServerError, string(services.KindUnavailable), "failed to process order")
}
