package core

import (
	"EstateDesk/entity"
)

func (c *Core) Login(username, password string) (*entity.UserAuth, error) {
	return c.auth.Login(username, password)
}

func (c *Core) Logout(token string) {
	c.auth.Logout(token)
}

func (c *Core) AuthenticateByToken(token string) (*entity.UserAuth, error) {
	return c.auth.AuthenticateByToken(token)
}
