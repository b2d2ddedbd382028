package automation

import (
	"context"
	"fmt"
)

// MakecomNotifier доставляет события в сценарий Make.com
type MakecomNotifier struct {
	client MakecomAPI
	log    Logger
}

// NewMakecomNotifier создает нотификатор поверх клиента Make.com
func NewMakecomNotifier(client MakecomAPI, log Logger) *MakecomNotifier {
	return &MakecomNotifier{client: client, log: log}
}

// Notify отправляет событие в Make.com
func (n *MakecomNotifier) Notify(ctx context.Context, event Event) error {
	if err := n.client.TriggerScenario(ctx, event); err != nil {
		return fmt.Errorf("%w: Notify - makecom trigger: %v", ErrDelivery, err)
	}

	return nil
}

// ZapierNotifier доставляет события в Zapier
type ZapierNotifier struct {
	client ZapierAPI
	log    Logger
}

// NewZapierNotifier создает нотификатор поверх клиента Zapier
func NewZapierNotifier(client ZapierAPI, log Logger) *ZapierNotifier {
	return &ZapierNotifier{client: client, log: log}
}

// Notify отправляет событие в Zapier
func (n *ZapierNotifier) Notify(ctx context.Context, event Event) error {
	if err := n.client.TriggerZap(ctx, event); err != nil {
		return fmt.Errorf("%w: Notify - zapier trigger: %v", ErrDelivery, err)
	}

	return nil
}

// NoopNotifier используется, когда автоматизация не настроена
type NoopNotifier struct{}

// Notify ничего не делает
func (NoopNotifier) Notify(_ context.Context, _ Event) error {
	return nil
}
