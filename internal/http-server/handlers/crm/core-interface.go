package crm

import (
	crmstore "EstateDesk/internal/crm"
)

// Core defines the methods required by the CRM handlers.
type Core interface {
	DispatchCrm(a crmstore.Action) crmstore.State
	CrmSnapshot() crmstore.State
}
