package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"service_engine_x/internal/domain/entities"
	"service_engine_x/internal/usecase/interfaces"
	"service_engine_x/pkg"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrOrderTaskNotFound    = errors.New("order task not found")
	ErrOrderMessageNotFound = errors.New("order message not found")
	ErrInvalidOrderStatus   = errors.New("invalid order status")
	ErrInvalidOrderPrice    = errors.New("invalid order price")
	ErrEmptyOrderMessage    = errors.New("message body is required")
)

var (
	OrderSortable   = []string{"created_at", "updated_at", "price", "status", "number"}
	OrderFilterable = []string{"status", "number", "user_id", "engagement_id", "created_at"}
)

type CreateOrderInput struct {
	UserID       string
	ServiceID    *string
	ServiceName  string
	Price        float64
	Currency     string
	Quantity     int
	Note         string
	EngagementID *string
}

type UpdateOrderInput struct {
	ServiceName *string
	Price       *float64
	Status      *int
	Note        *string
}

type CreateOrderTaskInput struct {
	Name        string
	Description *string
	SortOrder   int
	IsPublic    bool
	ForClient   bool
	DueAt       *time.Time
}

// IOrderUseCase exposes order operations plus the order's task list and
// message thread. HandlePaymentEvent is the payment webhook entry point.

type IOrderUseCase interface {
	Create(ctx context.Context, orgID string, input CreateOrderInput) (entities.Order, error)
	GetByID(ctx context.Context, orgID, id string) (entities.Order, error)
	List(ctx context.Context, orgID string, q pkg.ListQuery) ([]entities.Order, int, error)
	Update(ctx context.Context, orgID, id string, input UpdateOrderInput) (entities.Order, error)
	Delete(ctx context.Context, orgID, id string) error
	HandlePaymentEvent(ctx context.Context, orgID, orderID, status string) (entities.Order, error)

	CreateTask(ctx context.Context, orgID, orderID string, input CreateOrderTaskInput) (entities.OrderTask, error)
	ListTasks(ctx context.Context, orgID, orderID string) ([]entities.OrderTask, error)
	CompleteTask(ctx context.Context, orgID, taskID string) (entities.OrderTask, error)
	DeleteTask(ctx context.Context, orgID, taskID string) error

	CreateMessage(ctx context.Context, orgID, orderID, userID, body string) (entities.OrderMessage, error)
	ListMessages(ctx context.Context, orgID, orderID string) ([]entities.OrderMessage, error)
	DeleteMessage(ctx context.Context, orgID, messageID string) error
}

type OrderUseCase struct {
	orders   interfaces.IOrderRepository
	tasks    interfaces.IOrderTaskRepository
	messages interfaces.IOrderMessageRepository
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(orders interfaces.IOrderRepository, tasks interfaces.IOrderTaskRepository, messages interfaces.IOrderMessageRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, tasks: tasks, messages: messages}
}

func (u *OrderUseCase) Create(ctx context.Context, orgID string, input CreateOrderInput) (entities.Order, error) {
	if input.Price < 0 {
		return entities.Order{}, ErrInvalidOrderPrice
	}
	if input.Quantity < 1 {
		input.Quantity = 1
	}
	currency := strings.ToLower(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = "usd"
	}

	now := time.Now().UTC()
	order := entities.Order{
		ID:           uuid.NewString(),
		OrgID:        orgID,
		UserID:       input.UserID,
		ServiceID:    input.ServiceID,
		ServiceName:  input.ServiceName,
		Price:        input.Price,
		Currency:     currency,
		Quantity:     input.Quantity,
		Status:       entities.OrderStatusUnpaid,
		EngagementID: input.EngagementID,
		Note:         input.Note,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	for attempt := 0; attempt < 2; attempt++ {
		order.Number = pkg.GenerateOrderNumber()
		created, err := u.orders.Create(ctx, order)
		if err != nil {
			return entities.Order{}, err
		}
		if created.ID != "" {
			log.Printf("[usecase][order] created id=%s org=%s number=%s", created.ID, orgID, created.Number)
			return created, nil
		}
	}
	return entities.Order{}, ErrOrderNumberCollision
}

func (u *OrderUseCase) GetByID(ctx context.Context, orgID, id string) (entities.Order, error) {
	o, err := u.orders.GetByID(ctx, orgID, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) List(ctx context.Context, orgID string, q pkg.ListQuery) ([]entities.Order, int, error) {
	all, err := u.orders.ListByOrg(ctx, orgID)
	if err != nil {
		return nil, 0, err
	}
	page, total := pkg.ApplyListQuery(all, q, orderField)
	return page, total, nil
}

func orderField(o entities.Order, field string) (string, bool) {
	switch field {
	case "status":
		return fmt.Sprintf("%d", int(o.Status)), true
	case "number":
		return o.Number, true
	case "user_id":
		return o.UserID, true
	case "engagement_id":
		if o.EngagementID == nil {
			return "", true
		}
		return *o.EngagementID, true
	case "price":
		return fmt.Sprintf("%f", o.Price), true
	case "created_at":
		return o.CreatedAt.UTC().Format(time.RFC3339Nano), true
	case "updated_at":
		return o.UpdatedAt.UTC().Format(time.RFC3339Nano), true
	}
	return "", false
}

func (u *OrderUseCase) Update(ctx context.Context, orgID, id string, input UpdateOrderInput) (entities.Order, error) {
	o, err := u.GetByID(ctx, orgID, id)
	if err != nil {
		return entities.Order{}, err
	}

	if input.ServiceName != nil {
		o.ServiceName = *input.ServiceName
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return entities.Order{}, ErrInvalidOrderPrice
		}
		o.Price = *input.Price
	}
	if input.Note != nil {
		o.Note = *input.Note
	}
	if input.Status != nil {
		next := entities.OrderStatus(*input.Status)
		if _, ok := entities.OrderStatusMap[next]; !ok {
			return entities.Order{}, fmt.Errorf("%w: %d", ErrInvalidOrderStatus, *input.Status)
		}
		o.Status = next
	}

	updated, err := u.orders.Update(ctx, o)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return updated, nil
}

func (u *OrderUseCase) Delete(ctx context.Context, orgID, id string) error {
	deleted, err := u.orders.Delete(ctx, orgID, id)
	if err != nil {
		return err
	}
	if deleted.ID == "" {
		return ErrOrderNotFound
	}
	return nil
}

// HandlePaymentEvent marks the order paid when the checkout provider reports
// an approved payment. Repeat deliveries are acknowledged without a write.
func (u *OrderUseCase) HandlePaymentEvent(ctx context.Context, orgID, orderID, status string) (entities.Order, error) {
	o, err := u.GetByID(ctx, orgID, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	switch strings.ToLower(status) {
	case "approved", "paid", "completed":
	default:
		log.Printf("[usecase][order] payment event ignored order=%s status=%s", orderID, status)
		return o, nil
	}

	if o.Status != entities.OrderStatusUnpaid {
		log.Printf("[usecase][order] payment replay ignored order=%s status=%d", orderID, o.Status)
		return o, nil
	}

	o.Status = entities.OrderStatusInProgress
	updated, err := u.orders.Update(ctx, o)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	log.Printf("[usecase][order] payment recorded order=%s", orderID)
	return updated, nil
}

func (u *OrderUseCase) CreateTask(ctx context.Context, orgID, orderID string, input CreateOrderTaskInput) (entities.OrderTask, error) {
	if _, err := u.GetByID(ctx, orgID, orderID); err != nil {
		return entities.OrderTask{}, err
	}

	now := time.Now().UTC()
	return u.tasks.Create(ctx, entities.OrderTask{
		ID:          uuid.NewString(),
		OrderID:     orderID,
		OrgID:       orgID,
		Name:        input.Name,
		Description: input.Description,
		SortOrder:   input.SortOrder,
		IsPublic:    input.IsPublic,
		ForClient:   input.ForClient,
		DueAt:       input.DueAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (u *OrderUseCase) ListTasks(ctx context.Context, orgID, orderID string) ([]entities.OrderTask, error) {
	if _, err := u.GetByID(ctx, orgID, orderID); err != nil {
		return nil, err
	}
	return u.tasks.ListByOrder(ctx, orgID, orderID)
}

func (u *OrderUseCase) CompleteTask(ctx context.Context, orgID, taskID string) (entities.OrderTask, error) {
	t, err := u.tasks.GetByID(ctx, orgID, taskID)
	if err != nil {
		return entities.OrderTask{}, err
	}
	if t.ID == "" {
		return entities.OrderTask{}, ErrOrderTaskNotFound
	}
	if t.CompletedAt != nil {
		return t, nil
	}

	now := time.Now().UTC()
	t.CompletedAt = &now
	updated, err := u.tasks.Update(ctx, t)
	if err != nil {
		return entities.OrderTask{}, err
	}
	if updated.ID == "" {
		return entities.OrderTask{}, ErrOrderTaskNotFound
	}
	return updated, nil
}

func (u *OrderUseCase) DeleteTask(ctx context.Context, orgID, taskID string) error {
	deleted, err := u.tasks.Delete(ctx, orgID, taskID)
	if err != nil {
		return err
	}
	if deleted.ID == "" {
		return ErrOrderTaskNotFound
	}
	return nil
}

func (u *OrderUseCase) CreateMessage(ctx context.Context, orgID, orderID, userID, body string) (entities.OrderMessage, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return entities.OrderMessage{}, ErrEmptyOrderMessage
	}
	if _, err := u.GetByID(ctx, orgID, orderID); err != nil {
		return entities.OrderMessage{}, err
	}

	return u.messages.Create(ctx, entities.OrderMessage{
		ID:        uuid.NewString(),
		OrderID:   orderID,
		OrgID:     orgID,
		UserID:    userID,
		Message:   body,
		CreatedAt: time.Now().UTC(),
	})
}

func (u *OrderUseCase) ListMessages(ctx context.Context, orgID, orderID string) ([]entities.OrderMessage, error) {
	if _, err := u.GetByID(ctx, orgID, orderID); err != nil {
		return nil, err
	}
	return u.messages.ListByOrder(ctx, orgID, orderID)
}

func (u *OrderUseCase) DeleteMessage(ctx context.Context, orgID, messageID string) error {
	deleted, err := u.messages.Delete(ctx, orgID, messageID)
	if err != nil {
		return err
	}
	if deleted.ID == "" {
		return ErrOrderMessageNotFound
	}
	return nil
}
