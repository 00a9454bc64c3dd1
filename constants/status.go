package constants

// OrderStatus is the canonical status for rows in orders.
type OrderStatus string

// Stable values (store these exact strings in DB).
const (
	OrderStatusPending      OrderStatus = "PENDING"       // submitted, nothing ran yet
	OrderStatusProcessing   OrderStatus = "PROCESSING"    // extraction stage in progress
	OrderStatusOCRCompleted OrderStatus = "OCR_COMPLETED" // extraction done, no mapping configured
	OrderStatusMapping      OrderStatus = "MAPPING"       // mapping stage in progress
	OrderStatusCompleted    OrderStatus = "COMPLETED"     // all items mapped
	OrderStatusFailed       OrderStatus = "FAILED"        // aggregate failure (see error_message)
	OrderStatusLocked       OrderStatus = "LOCKED"        // administrative freeze, rejects all work
)

// ItemStatus is the canonical status for rows in order_item.
type ItemStatus string

const (
	ItemStatusPending    ItemStatus = "PENDING"
	ItemStatusProcessing ItemStatus = "PROCESSING"
	ItemStatusCompleted  ItemStatus = "COMPLETED"
	ItemStatusFailed     ItemStatus = "FAILED" // resumable for mapping once extraction output exists
)

// OrderStatuses holds the allowed values for the order status field.
var OrderStatuses = []string{
	string(OrderStatusPending),
	string(OrderStatusProcessing),
	string(OrderStatusOCRCompleted),
	string(OrderStatusMapping),
	string(OrderStatusCompleted),
	string(OrderStatusFailed),
	string(OrderStatusLocked),
}

// ItemStatuses holds the allowed values for the item status field.
var ItemStatuses = []string{
	string(ItemStatusPending),
	string(ItemStatusProcessing),
	string(ItemStatusCompleted),
	string(ItemStatusFailed),
}
