package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"service_engine_x/internal/domain/entities"
	mock_interfaces "service_engine_x/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type orderDeps struct {
	orders   *mock_interfaces.MockIOrderRepository
	tasks    *mock_interfaces.MockIOrderTaskRepository
	messages *mock_interfaces.MockIOrderMessageRepository
}

func newOrderUseCaseTest(ctrl *gomock.Controller) (*OrderUseCase, orderDeps) {
	d := orderDeps{
		orders:   mock_interfaces.NewMockIOrderRepository(ctrl),
		tasks:    mock_interfaces.NewMockIOrderTaskRepository(ctrl),
		messages: mock_interfaces.NewMockIOrderMessageRepository(ctrl),
	}
	return NewOrderUseCase(d.orders, d.tasks, d.messages), d
}

func unpaidOrder() entities.Order {
	now := time.Now().UTC().Add(-time.Hour)
	return entities.Order{
		ID:          "order-1",
		OrgID:       "org-1",
		UserID:      "client-1",
		Number:      "AB12CD34",
		ServiceName: "Acme Co",
		Price:       300,
		Currency:    "usd",
		Quantity:    1,
		Status:      entities.OrderStatusUnpaid,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestOrderUseCase_Create(t *testing.T) {
	t.Run("negative price", func(t *testing.T) {
		uc, _ := newOrderUseCaseTest(gomock.NewController(t))
		_, err := uc.Create(context.Background(), "org-1", CreateOrderInput{Price: -1})
		if !errors.Is(err, ErrInvalidOrderPrice) {
			t.Fatalf("expected ErrInvalidOrderPrice, got %v", err)
		}
	})

	t.Run("create defaults currency and quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newOrderUseCaseTest(ctrl)

		d.orders.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.Currency != "usd" || o.Quantity != 1 || o.Number == "" {
					t.Fatalf("unexpected order: %+v", o)
				}
				if o.Status != entities.OrderStatusUnpaid {
					t.Fatalf("expected Unpaid, got %d", o.Status)
				}
				return o, nil
			},
		)

		res, err := uc.Create(context.Background(), "org-1", CreateOrderInput{
			UserID:      "client-1",
			ServiceName: "Retainer",
			Price:       100,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("number collision exhausts retries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newOrderUseCaseTest(ctrl)

		d.orders.EXPECT().Create(gomock.Any(), gomock.Any()).Times(2).
			Return(entities.Order{}, nil)

		_, err := uc.Create(context.Background(), "org-1", CreateOrderInput{Price: 10})
		if !errors.Is(err, ErrOrderNumberCollision) {
			t.Fatalf("expected ErrOrderNumberCollision, got %v", err)
		}
	})
}

func TestOrderUseCase_Update(t *testing.T) {
	t.Run("unknown status id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newOrderUseCaseTest(ctrl)

		d.orders.EXPECT().GetByID(gomock.Any(), "org-1", "order-1").Return(unpaidOrder(), nil)

		bad := 99
		_, err := uc.Update(context.Background(), "org-1", "order-1", UpdateOrderInput{Status: &bad})
		if !errors.Is(err, ErrInvalidOrderStatus) {
			t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
		}
	})

	t.Run("patch fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newOrderUseCaseTest(ctrl)

		d.orders.EXPECT().GetByID(gomock.Any(), "org-1", "order-1").Return(unpaidOrder(), nil)
		d.orders.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.ServiceName != "Renamed" || o.Price != 450 || o.Status != entities.OrderStatusOnHold {
					t.Fatalf("unexpected patch: %+v", o)
				}
				return o, nil
			},
		)

		name := "Renamed"
		price := 450.0
		status := int(entities.OrderStatusOnHold)
		_, err := uc.Update(context.Background(), "org-1", "order-1", UpdateOrderInput{
			ServiceName: &name,
			Price:       &price,
			Status:      &status,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestOrderUseCase_HandlePaymentEvent(t *testing.T) {
	t.Run("unknown order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newOrderUseCaseTest(ctrl)

		d.orders.EXPECT().GetByID(gomock.Any(), "org-1", "order-1").Return(entities.Order{}, nil)

		_, err := uc.HandlePaymentEvent(context.Background(), "org-1", "order-1", "approved")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("non payment status ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newOrderUseCaseTest(ctrl)

		d.orders.EXPECT().GetByID(gomock.Any(), "org-1", "order-1").Return(unpaidOrder(), nil)

		got, err := uc.HandlePaymentEvent(context.Background(), "org-1", "order-1", "pending")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.OrderStatusUnpaid {
			t.Fatalf("expected order untouched, got %d", got.Status)
		}
	})

	t.Run("approved moves unpaid to in progress", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newOrderUseCaseTest(ctrl)

		d.orders.EXPECT().GetByID(gomock.Any(), "org-1", "order-1").Return(unpaidOrder(), nil)
		d.orders.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.Status != entities.OrderStatusInProgress {
					t.Fatalf("expected InProgress, got %d", o.Status)
				}
				return o, nil
			},
		)

		got, err := uc.HandlePaymentEvent(context.Background(), "org-1", "order-1", "Approved")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.OrderStatusInProgress {
			t.Fatalf("expected InProgress, got %d", got.Status)
		}
	})

	t.Run("replay after payment is acknowledged without write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newOrderUseCaseTest(ctrl)

		o := unpaidOrder()
		o.Status = entities.OrderStatusInProgress
		d.orders.EXPECT().GetByID(gomock.Any(), "org-1", "order-1").Return(o, nil)

		got, err := uc.HandlePaymentEvent(context.Background(), "org-1", "order-1", "paid")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.OrderStatusInProgress {
			t.Fatalf("expected InProgress, got %d", got.Status)
		}
	})
}

func TestOrderUseCase_Tasks(t *testing.T) {
	t.Run("create task validates order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newOrderUseCaseTest(ctrl)

		d.orders.EXPECT().GetByID(gomock.Any(), "org-1", "order-1").Return(entities.Order{}, nil)

		_, err := uc.CreateTask(context.Background(), "org-1", "order-1", CreateOrderTaskInput{Name: "Kickoff"})
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("create task success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newOrderUseCaseTest(ctrl)

		d.orders.EXPECT().GetByID(gomock.Any(), "org-1", "order-1").Return(unpaidOrder(), nil)
		d.tasks.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.OrderTask{})).DoAndReturn(
			func(_ context.Context, task entities.OrderTask) (entities.OrderTask, error) {
				if task.ID == "" || task.OrderID != "order-1" || task.OrgID != "org-1" {
					t.Fatalf("unexpected task: %+v", task)
				}
				return task, nil
			},
		)

		task, err := uc.CreateTask(context.Background(), "org-1", "order-1", CreateOrderTaskInput{Name: "Kickoff", IsPublic: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if task.Name != "Kickoff" || !task.IsPublic {
			t.Fatalf("unexpected task: %+v", task)
		}
	})

	t.Run("complete task is idempotent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newOrderUseCaseTest(ctrl)

		done := time.Now().UTC().Add(-time.Minute)
		d.tasks.EXPECT().GetByID(gomock.Any(), "org-1", "task-1").
			Return(entities.OrderTask{ID: "task-1", CompletedAt: &done}, nil)

		task, err := uc.CompleteTask(context.Background(), "org-1", "task-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if task.CompletedAt == nil || !task.CompletedAt.Equal(done) {
			t.Fatalf("expected original completion time, got %+v", task.CompletedAt)
		}
	})

	t.Run("complete task stamps completed_at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newOrderUseCaseTest(ctrl)

		d.tasks.EXPECT().GetByID(gomock.Any(), "org-1", "task-1").
			Return(entities.OrderTask{ID: "task-1", OrgID: "org-1"}, nil)
		d.tasks.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, task entities.OrderTask) (entities.OrderTask, error) {
				if task.CompletedAt == nil {
					t.Fatalf("expected completed_at")
				}
				return task, nil
			},
		)

		if _, err := uc.CompleteTask(context.Background(), "org-1", "task-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("delete missing task", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newOrderUseCaseTest(ctrl)

		d.tasks.EXPECT().Delete(gomock.Any(), "org-1", "task-1").Return(entities.OrderTask{}, nil)

		err := uc.DeleteTask(context.Background(), "org-1", "task-1")
		if !errors.Is(err, ErrOrderTaskNotFound) {
			t.Fatalf("expected ErrOrderTaskNotFound, got %v", err)
		}
	})
}

func TestOrderUseCase_Messages(t *testing.T) {
	t.Run("empty body", func(t *testing.T) {
		uc, _ := newOrderUseCaseTest(gomock.NewController(t))
		_, err := uc.CreateMessage(context.Background(), "org-1", "order-1", "client-1", "   ")
		if !errors.Is(err, ErrEmptyOrderMessage) {
			t.Fatalf("expected ErrEmptyOrderMessage, got %v", err)
		}
	})

	t.Run("create message success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newOrderUseCaseTest(ctrl)

		d.orders.EXPECT().GetByID(gomock.Any(), "org-1", "order-1").Return(unpaidOrder(), nil)
		d.messages.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.OrderMessage{})).DoAndReturn(
			func(_ context.Context, m entities.OrderMessage) (entities.OrderMessage, error) {
				if m.Message != "hello" || m.UserID != "client-1" || m.OrderID != "order-1" {
					t.Fatalf("unexpected message: %+v", m)
				}
				return m, nil
			},
		)

		if _, err := uc.CreateMessage(context.Background(), "org-1", "order-1", "client-1", "  hello "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("delete missing message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newOrderUseCaseTest(ctrl)

		d.messages.EXPECT().Delete(gomock.Any(), "org-1", "msg-1").Return(entities.OrderMessage{}, nil)

		err := uc.DeleteMessage(context.Background(), "org-1", "msg-1")
		if !errors.Is(err, ErrOrderMessageNotFound) {
			t.Fatalf("expected ErrOrderMessageNotFound, got %v", err)
		}
	})
}
