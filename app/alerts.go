package app

import (
	"sync"
	"time"
)

// Alerter shows a one-shot message to the user
type Alerter interface {
	Alert(title, message string)
}

// AlertFunc adapts a function to Alerter
type AlertFunc func(title, message string)

// Alert calls f
func (f AlertFunc) Alert(title, message string) { f(title, message) }

// PendingAlert is an alert waiting for the presentation layer to pick it up
type PendingAlert struct {
	Title    string    `json:"title"`
	Message  string    `json:"message"`
	RaisedAt time.Time `json:"raisedAt"`
}

// AlertQueue buffers alerts for presentation layers that poll
type AlertQueue struct {
	mu     sync.Mutex
	alerts []PendingAlert
}

// NewAlertQueue creates an empty queue
func NewAlertQueue() *AlertQueue {
	return &AlertQueue{}
}

// Alert enqueues an alert
func (q *AlertQueue) Alert(title, message string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.alerts = append(q.alerts, PendingAlert{Title: title, Message: message, RaisedAt: time.Now()})
}

// Drain returns and clears all pending alerts, oldest first
func (q *AlertQueue) Drain() []PendingAlert {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.alerts
	q.alerts = nil
	if out == nil {
		out = []PendingAlert{}
	}
	return out
}

var (
	_ Alerter = AlertFunc(nil)
	_ Alerter = (*AlertQueue)(nil)
)
