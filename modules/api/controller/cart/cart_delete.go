package cart

import (
	"github.com/gin-gonic/gin"
)

func (this API) Delete(c *gin.Context) {
	container, ok := this.getCart(c)
	if !ok {
		return
	}

	err := container.RemoveItem(c.Request.Context(), c.Param("id"))
	this.respond(c, container, err)
}

func (this API) Clear(c *gin.Context) {
	container, ok := this.getCart(c)
	if !ok {
		return
	}

	err := container.Clear(c.Request.Context())
	this.respond(c, container, err)
}
