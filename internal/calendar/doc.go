// Package calendar exports event records as an iCalendar (RFC 5545) feed.
package calendar
