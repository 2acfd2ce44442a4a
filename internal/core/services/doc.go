// Package services contains the core business logic of ragkit.
//
// Services implement the driving ports and depend only on domain types
// and driven port interfaces. They never import adapter or connector
// packages; infrastructure is injected through constructors.
package services
