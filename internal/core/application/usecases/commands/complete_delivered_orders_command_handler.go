package commands

import (
	"context"
	"errors"
	"log/slog"

	"cherry/internal/core/domain/model/order"
	"cherry/internal/core/ports"
)

// DeliverySweepReport summarizes a delivery status sweep.
type DeliverySweepReport struct {
	Checked int
	Updated int
	Failed  int
}

// CompleteDeliveredOrdersCommandHandler queries the carrier for every
// shipped order with a tracking number and completes the ones already
// signed for. Each completion runs in its own transaction so one carrier
// hiccup never rolls back the rest of the sweep.
type CompleteDeliveredOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	gateway    ports.TrackingGateway
	logger     *slog.Logger
}

// NewCompleteDeliveredOrdersCommandHandler creates a sweep handler.
func NewCompleteDeliveredOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	gateway ports.TrackingGateway,
	logger *slog.Logger,
) CompleteDeliveredOrdersCommandHandler {
	return CompleteDeliveredOrdersCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		logger:     logger,
	}
}

// Handle processes the sweep command and returns a summary of what was
// checked and updated. Per-order failures are counted and logged, not
// propagated: the sweep always visits every candidate.
func (h *CompleteDeliveredOrdersCommandHandler) Handle(
	ctx context.Context, cmd CompleteDeliveredOrdersCommand,
) (DeliverySweepReport, error) {
	if err := cmd.Validate(); err != nil {
		return DeliverySweepReport{}, err
	}

	shippedOrders, err := h.uowFactory.Create().OrderRepository().GetAllShippedWithTracking(ctx)
	if err != nil {
		return DeliverySweepReport{}, err
	}

	var report DeliverySweepReport
	for _, shippedOrder := range shippedOrders {
		signed, err := h.checkOrder(ctx, shippedOrder)
		if err != nil {
			var notReady *ports.ErrTrackingNotReady
			if errors.As(err, &notReady) {
				report.Checked++
				continue
			}

			report.Failed++
			h.logger.Warn("delivery status check failed",
				"order_id", shippedOrder.ID(),
				"tracking_number", shippedOrder.TrackingNumber(),
				"error", err)
			continue
		}

		report.Checked++
		if !signed {
			continue
		}

		if err = h.completeOrder(ctx, shippedOrder.ID()); err != nil {
			report.Failed++
			h.logger.Warn("order completion failed",
				"order_id", shippedOrder.ID(),
				"error", err)
			continue
		}

		report.Updated++
		h.logger.Info("order auto-completed",
			"order_id", shippedOrder.ID(),
			"tracking_number", shippedOrder.TrackingNumber())
	}

	return report, nil
}

func (h *CompleteDeliveredOrdersCommandHandler) checkOrder(ctx context.Context, o *order.Order) (bool, error) {
	phoneTail := lastDigits(o.Recipient().Phone(), 4)

	info, err := h.gateway.Query(ctx, o.TrackingNumber(), phoneTail)
	if err != nil {
		return false, err
	}

	return info.State == ports.DeliveryStateSigned, nil
}

func (h *CompleteDeliveredOrdersCommandHandler) completeOrder(ctx context.Context, orderID int64) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	existingOrder, err := uow.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return err
	}

	if err = existingOrder.ChangeStatus(order.Completed); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, existingOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func lastDigits(phone string, n int) string {
	runes := []rune(phone)
	if len(runes) <= n {
		return phone
	}
	return string(runes[len(runes)-n:])
}
