package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"cherry/internal/core/application/usecases/commands"
	"cherry/internal/core/application/usecases/queries"
	"cherry/internal/core/domain/model/order"
	"cherry/internal/core/ports"
	"cherry/internal/generated/servers"
	"cherry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	defaultPage  = 1
	defaultLimit = 50
)

// OrderSearcher runs the customer identity lookup.
type OrderSearcher interface {
	Handle(ctx context.Context, query queries.SearchOrdersQuery) ([]queries.SearchOrdersQueryResponse, error)
}

// OrderLister runs the staff order listing.
type OrderLister interface {
	Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.ListOrdersQueryResponse, error)
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases and owns
// the user-facing response messages.
type Server struct {
	// Command handlers
	createOrderHandler             commands.CreateOrderCommandHandler
	updateOrderHandler             commands.UpdateOrderCommandHandler
	changeOrderStatusHandler       commands.ChangeOrderStatusCommandHandler
	assignTrackingHandler          commands.AssignTrackingCommandHandler
	completeDeliveredOrdersHandler commands.CompleteDeliveredOrdersCommandHandler

	// Query handlers
	searchOrdersHandler OrderSearcher
	listOrdersHandler   OrderLister

	// Carrier lookup for the customer tracking endpoint
	trackingGateway ports.TrackingGateway

	adminPasscode     string
	logisticsPasscode string

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	assignTrackingHandler commands.AssignTrackingCommandHandler,
	completeDeliveredOrdersHandler commands.CompleteDeliveredOrdersCommandHandler,
	searchOrdersHandler OrderSearcher,
	listOrdersHandler OrderLister,
	trackingGateway ports.TrackingGateway,
	adminPasscode string,
	logisticsPasscode string,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:             createOrderHandler,
		updateOrderHandler:             updateOrderHandler,
		changeOrderStatusHandler:       changeOrderStatusHandler,
		assignTrackingHandler:          assignTrackingHandler,
		completeDeliveredOrdersHandler: completeDeliveredOrdersHandler,
		searchOrdersHandler:            searchOrdersHandler,
		listOrdersHandler:              listOrdersHandler,
		trackingGateway:                trackingGateway,
		adminPasscode:                  adminPasscode,
		logisticsPasscode:              logisticsPasscode,
		logger:                         logger,
	}
}

// GetRoot handles GET / - the service banner.
func (s *Server) GetRoot(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, servers.Banner{
		Message: "Cherry Logistics API",
		Version: "1.0.0",
	})
}

// CreateOrder handles POST /api/orders - registers a customer submission.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return s.failure(ctx, http.StatusBadRequest, "无效的请求数据")
	}

	recipient, err := order.NewRecipient(
		newOrder.RecipientName,
		newOrder.RecipientPhone,
		newOrder.RecipientAddress,
	)
	if err != nil {
		return s.failure(ctx, http.StatusBadRequest, "缺少必填字段")
	}

	items, err := toDomainItems(newOrder.Items)
	if err != nil {
		return s.failure(ctx, http.StatusBadRequest, "缺少必填字段")
	}

	cmd, err := commands.NewCreateOrderCommand(newOrder.MallOrderNo, recipient, items)
	if err != nil {
		return s.failure(ctx, http.StatusBadRequest, "缺少必填字段")
	}

	orderID, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.internalError(ctx, "create order", err)
	}

	return ctx.JSON(http.StatusOK, servers.OrderCreated{
		Success: true,
		OrderId: formatOrderID(orderID),
		Message: "订单提交成功",
	})
}

// SearchOrders handles GET /api/orders/search - the customer identity lookup.
func (s *Server) SearchOrders(ctx echo.Context, params servers.SearchOrdersParams) error {
	query, err := queries.NewSearchOrdersQuery(params.Name, params.Phone)
	if err != nil {
		return s.failure(ctx, http.StatusBadRequest, "请提供姓名和电话")
	}

	orders, err := s.searchOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.internalError(ctx, "search orders", err)
	}

	// No matches is a 404 for customers, never an empty 200.
	if len(orders) == 0 {
		return s.failure(ctx, http.StatusNotFound, "未找到匹配的订单")
	}

	response := servers.OrderSearchResult{
		Orders: make([]servers.OrderSummary, 0, len(orders)),
	}
	for _, o := range orders {
		response.Orders = append(response.Orders, servers.OrderSummary{
			OrderId:        formatOrderID(o.ID),
			MallOrderNo:    o.MallOrderNo,
			Status:         o.Status.String(),
			StatusText:     o.Status.DisplayText(),
			TrackingNumber: optionalString(o.TrackingNumber),
			CreatedAt:      o.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// ListOrders handles GET /api/orders - the staff listing with status filter
// and paging.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	var statusFilter *order.Status
	if params.Status != nil {
		status, err := order.ParseStatus(string(*params.Status))
		if err != nil {
			return s.failure(ctx, http.StatusBadRequest, "无效的状态值")
		}
		statusFilter = &status
	}

	page := defaultPage
	if params.Page != nil {
		page = *params.Page
	}
	limit := defaultLimit
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewListOrdersQuery(statusFilter, page, limit)
	if err != nil {
		return s.failure(ctx, http.StatusBadRequest, "无效的请求数据")
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.internalError(ctx, "list orders", err)
	}

	response := servers.OrderListing{
		Orders: make([]servers.OrderDetail, 0, len(orders)),
		Page:   page,
		Limit:  limit,
	}
	for _, o := range orders {
		items := make([]servers.OrderItem, 0, len(o.Items))
		for _, item := range o.Items {
			items = append(items, servers.OrderItem{
				Variety: item.Variety,
				Size:    item.Size,
				Boxes:   item.Boxes,
			})
		}

		response.Orders = append(response.Orders, servers.OrderDetail{
			OrderId:          formatOrderID(o.ID),
			MallOrderNo:      o.MallOrderNo,
			RecipientName:    o.RecipientName,
			RecipientPhone:   o.RecipientPhone,
			RecipientAddress: o.RecipientAddress,
			Items:            items,
			Status:           o.Status.String(),
			StatusText:       o.Status.DisplayText(),
			TrackingNumber:   optionalString(o.TrackingNumber),
			CreatedAt:        o.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrder handles PUT /api/orders/{id} - staff field edits.
func (s *Server) UpdateOrder(ctx echo.Context, id int64) error {
	var patch servers.OrderPatch
	if err := ctx.Bind(&patch); err != nil {
		return s.failure(ctx, http.StatusBadRequest, "无效的请求数据")
	}

	changes := commands.OrderChanges{
		MallOrderNo:      patch.MallOrderNo,
		RecipientName:    patch.RecipientName,
		RecipientPhone:   patch.RecipientPhone,
		RecipientAddress: patch.RecipientAddress,
	}
	if patch.Items != nil {
		items, err := toDomainItems(*patch.Items)
		if err != nil {
			return s.failure(ctx, http.StatusBadRequest, "无效的请求数据")
		}
		changes.Items = &items
	}

	cmd, err := commands.NewUpdateOrderCommand(id, changes)
	if err != nil {
		if changes.IsEmpty() {
			return s.failure(ctx, http.StatusBadRequest, "没有提供需要更新的字段")
		}
		return s.failure(ctx, http.StatusBadRequest, "无效的请求数据")
	}

	if err = s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			return s.failure(ctx, http.StatusNotFound, "订单不存在")
		case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
			return s.failure(ctx, http.StatusBadRequest, "无效的请求数据")
		default:
			return s.internalError(ctx, "update order", err)
		}
	}

	return s.success(ctx, "订单更新成功")
}

// UpdateOrderStatus handles PUT /api/orders/{id}/status - workflow moves.
func (s *Server) UpdateOrderStatus(ctx echo.Context, id int64, params servers.UpdateOrderStatusParams) error {
	status, err := order.ParseStatus(string(params.Status))
	if err != nil {
		return s.failure(ctx, http.StatusBadRequest, "无效的状态值")
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, status)
	if err != nil {
		return s.failure(ctx, http.StatusBadRequest, "无效的请求数据")
	}

	if err = s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return s.failure(ctx, http.StatusNotFound, "订单不存在")
		}
		return s.internalError(ctx, "update order status", err)
	}

	return s.success(ctx, "状态更新成功")
}

// UpdateOrderTracking handles PUT /api/orders/{id}/tracking - waybill backfill
// by logistics staff.
func (s *Server) UpdateOrderTracking(ctx echo.Context, id int64) error {
	var body servers.TrackingUpdate
	if err := ctx.Bind(&body); err != nil {
		return s.failure(ctx, http.StatusBadRequest, "无效的请求数据")
	}

	cmd, err := commands.NewAssignTrackingCommand(id, body.TrackingNumber)
	if err != nil {
		return s.failure(ctx, http.StatusBadRequest, "请提供快递单号")
	}

	if err = s.assignTrackingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return s.failure(ctx, http.StatusNotFound, "订单不存在")
		}
		return s.internalError(ctx, "update order tracking", err)
	}

	return s.success(ctx, "快递单号更新成功")
}

// Authenticate handles POST /api/auth - staff passcode verification.
// A request without a role accepts either passcode, kept for older clients.
func (s *Server) Authenticate(ctx echo.Context) error {
	var req servers.AuthRequest
	if err := ctx.Bind(&req); err != nil {
		return s.failure(ctx, http.StatusBadRequest, "无效的请求数据")
	}

	var authorized bool
	switch {
	case req.Role != nil && *req.Role == servers.Admin:
		authorized = req.Passcode == s.adminPasscode
	case req.Role != nil && *req.Role == servers.Logistics:
		authorized = req.Passcode == s.logisticsPasscode
	default:
		authorized = req.Passcode == s.adminPasscode || req.Passcode == s.logisticsPasscode
	}

	if !authorized {
		return s.failure(ctx, http.StatusUnauthorized, "密码错误")
	}

	return s.success(ctx, "验证成功")
}

// QueryExpressTracking handles GET /api/tracking/{tracking_number} - the
// carrier route lookup for customers.
func (s *Server) QueryExpressTracking(ctx echo.Context, trackingNumber string, params servers.QueryExpressTrackingParams) error {
	phone := ""
	if params.Phone != nil {
		phone = *params.Phone
	}

	info, err := s.trackingGateway.Query(ctx.Request().Context(), trackingNumber, phone)
	if err != nil {
		var notReady *ports.ErrTrackingNotReady
		switch {
		case errors.As(err, &notReady):
			return s.failure(ctx, http.StatusNotFound,
				"该快递单号暂无物流信息，可能是刚发货尚未录入系统。建议明日再查询，或联系快递公司确认单号。")
		case errors.Is(err, errs.ErrValueIsRequired):
			return s.failure(ctx, http.StatusBadRequest, "请提供快递单号")
		default:
			return s.internalError(ctx, "query express tracking", err)
		}
	}

	events := make([]servers.TrackingEvent, 0, len(info.Events))
	for _, event := range info.Events {
		events = append(events, servers.TrackingEvent{
			Time:    event.Time,
			Context: event.Context,
		})
	}

	return ctx.JSON(http.StatusOK, servers.TrackingDetail{
		TrackingNumber: info.TrackingNumber,
		State:          info.State,
		StateText:      info.StateText,
		Company:        info.Company,
		Events:         events,
	})
}

// CheckDeliveryStatus handles POST /api/cron/check-delivery-status - the
// manual trigger for the delivery status sweep.
func (s *Server) CheckDeliveryStatus(ctx echo.Context) error {
	cmd, err := commands.NewCompleteDeliveredOrdersCommand()
	if err != nil {
		return s.internalError(ctx, "check delivery status", err)
	}

	report, err := s.completeDeliveredOrdersHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.internalError(ctx, "check delivery status", err)
	}

	return ctx.JSON(http.StatusOK, servers.SweepSummary{
		Success:   true,
		Checked:   report.Checked,
		Updated:   report.Updated,
		Errors:    report.Failed,
		Timestamp: time.Now().Unix(),
	})
}

func (s *Server) success(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusOK, servers.Result{Success: true, Message: message})
}

func (s *Server) failure(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Result{Success: false, Message: message})
}

// internalError hides store and carrier details from the caller; the real
// error goes to the log only.
func (s *Server) internalError(ctx echo.Context, operation string, err error) error {
	s.logger.Error("request failed", "operation", operation, "error", err)
	return ctx.JSON(http.StatusInternalServerError, servers.Result{
		Success: false,
		Message: "服务器内部错误",
	})
}

func formatOrderID(id int64) string {
	return fmt.Sprintf("%03d", id)
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func toDomainItems(items []servers.OrderItem) ([]order.Item, error) {
	domainItems := make([]order.Item, 0, len(items))
	for _, item := range items {
		domainItem, err := order.NewItem(item.Variety, item.Size, item.Boxes)
		if err != nil {
			return nil, err
		}
		domainItems = append(domainItems, domainItem)
	}
	return domainItems, nil
}
