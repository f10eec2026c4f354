package core

import (
	crmstore "EstateDesk/internal/crm"
)

func (c *Core) DispatchCrm(a crmstore.Action) crmstore.State {
	return c.crm.Dispatch(a)
}

func (c *Core) CrmSnapshot() crmstore.State {
	return c.crm.Snapshot()
}
