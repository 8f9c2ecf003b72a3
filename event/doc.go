// Package event implements the typed publish/deliver channels that connect
// field components with their canvas and editor context.
//
// Delivery is cooperative: Publish only queues a message, and the host drains
// the queue with Flush from its single update loop. In a Bubble Tea program
// the host returns Bus.Cmd from Update and calls Bus.Flush when it receives
// FlushMsg, so every handler runs on the UI goroutine.
package event
