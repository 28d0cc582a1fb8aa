package cart

import (
	"github.com/gin-gonic/gin"
)

// Add merges a variant into the visitor's cart. Quantity defaults to one.
func (this API) Add(c *gin.Context) {
	var form CartAddForm
	if err := c.ShouldBindJSON(&form); err != nil || form.Variant.ID == "" {
		c.JSON(400, gin.H{"status": "error", "message": "Malformed request, variant id is required."})
		return
	}
	if len(form.Variant.Prices) == 0 {
		c.JSON(400, gin.H{"status": "error", "message": "Malformed request, variant has no price."})
		return
	}
	if form.Quantity == 0 {
		form.Quantity = 1
	}

	container, ok := this.getCart(c)
	if !ok {
		return
	}

	err := container.AddItem(c.Request.Context(), form.Product, form.Variant, form.Quantity)
	this.respond(c, container, err)
}
