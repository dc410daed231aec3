// Package validator checks inbound structs against their `validate` tags and
// reports failures keyed by json field name, with English messages.
package validator
