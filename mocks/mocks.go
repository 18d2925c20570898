package mocks

//go:generate mockgen -package mocks -destination event_store.go github.com/hellofresh/goledger EventStore,EventStream
//go:generate mockgen -package mocks -destination metrics.go github.com/hellofresh/goledger Metrics
//go:generate mockgen -package mocks -destination amqp.go github.com/hellofresh/goledger/extension/amqp NotificationChannel
