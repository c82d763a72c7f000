// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and rows of the orders table.
//
// Line items are stored as a serialized JSON column; this is the only place
// in the system where items exist in serialized form.
package orderrepo

import (
	"encoding/json"

	"cherry/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// recipient_name and recipient_phone share a composite index because the
// customer-facing lookup always queries both together.
type OrderDTO struct {
	ID               int64  `gorm:"primaryKey;autoIncrement"`
	MallOrderNo      string `gorm:"type:text;not null"`
	RecipientName    string `gorm:"type:text;not null;index:idx_recipient_identity"`
	RecipientPhone   string `gorm:"type:text;not null;index:idx_recipient_identity"`
	RecipientAddress string `gorm:"type:text;not null"`
	Items            string `gorm:"type:text;not null"`
	Status           string `gorm:"type:text;not null;index"`
	TrackingNumber   *string
	CreatedAt        int64 `gorm:"not null;index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// itemDTO is the serialized shape of one line item inside the items column.
type itemDTO struct {
	Variety string `json:"variety"`
	Size    string `json:"size"`
	Boxes   int    `json:"boxes"`
}

// fromDomain converts an order aggregate to its database representation,
// serializing the item sequence to JSON.
func fromDomain(o *order.Order) (OrderDTO, error) {
	items := o.Items()
	itemDTOs := make([]itemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, itemDTO{
			Variety: item.Variety(),
			Size:    item.Size(),
			Boxes:   item.Boxes(),
		})
	}

	itemsJSON, err := json.Marshal(itemDTOs)
	if err != nil {
		return OrderDTO{}, err
	}

	var trackingNumber *string
	if tn := o.TrackingNumber(); tn != "" {
		trackingNumber = &tn
	}

	return OrderDTO{
		ID:               o.ID(),
		MallOrderNo:      o.MallOrderNo(),
		RecipientName:    o.Recipient().Name(),
		RecipientPhone:   o.Recipient().Phone(),
		RecipientAddress: o.Recipient().Address(),
		Items:            string(itemsJSON),
		Status:           o.Status().String(),
		TrackingNumber:   trackingNumber,
		CreatedAt:        o.CreatedAt(),
	}, nil
}

// toDomain converts a database row back into an order aggregate,
// re-validating every invariant on the way.
func toDomain(dto OrderDTO) (*order.Order, error) {
	recipient, err := order.NewRecipient(dto.RecipientName, dto.RecipientPhone, dto.RecipientAddress)
	if err != nil {
		return nil, err
	}

	var itemDTOs []itemDTO
	if err = json.Unmarshal([]byte(dto.Items), &itemDTOs); err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(itemDTOs))
	for _, d := range itemDTOs {
		item, itemErr := order.NewItem(d.Variety, d.Size, d.Boxes)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var trackingNumber string
	if dto.TrackingNumber != nil {
		trackingNumber = *dto.TrackingNumber
	}

	return order.RestoreOrder(dto.ID, dto.MallOrderNo, recipient, items, status, trackingNumber, dto.CreatedAt)
}
