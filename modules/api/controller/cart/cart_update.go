package cart

import (
	"github.com/gin-gonic/gin"
)

func (this API) Update(c *gin.Context) {
	var form CartUpdateForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(400, gin.H{"status": "error", "message": "Malformed request, quantity is required."})
		return
	}

	container, ok := this.getCart(c)
	if !ok {
		return
	}

	err := container.UpdateQuantity(c.Request.Context(), c.Param("id"), *form.Quantity)
	this.respond(c, container, err)
}
