package cart

import (
	"github.com/gin-gonic/gin"
)

func (this API) Get(c *gin.Context) {
	container, ok := this.getCart(c)
	if !ok {
		return
	}
	this.respond(c, container, nil)
}
