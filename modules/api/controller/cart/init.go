package cart

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/olebedev/config"
	"github.com/shopspring/decimal"
	"github.com/tryanzu/storefront/core/common"
	"github.com/tryanzu/storefront/modules/cart"
)

type API struct {
	Carts  *cart.Registry `inject:""`
	Config *config.Config `inject:""`
}

type CartAddForm struct {
	Product  cart.Product `json:"product"`
	Variant  cart.Variant `json:"variant" binding:"required"`
	Quantity int          `json:"quantity"`
}

type CartUpdateForm struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type cartResponse struct {
	Items     []cart.CartItem `json:"items"`
	Total     decimal.Decimal `json:"total"`
	Formatted string          `json:"formatted_total"`
	Count     int             `json:"count"`
}

// getCart returns the cart of the visitor's session.
func (this API) getCart(c *gin.Context) (*cart.Cart, bool) {
	sid := c.MustGet("session_id").(string)
	container, err := this.Carts.Get(c.Request.Context(), sid)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": err.Error()})
		return nil, false
	}
	return container, true
}

// respond writes the cart state, or the error of a failed mutation.
func (this API) respond(c *gin.Context, container *cart.Cart, err error) {
	if err != nil {
		status := http.StatusServiceUnavailable
		if err == cart.ErrInvalidQuantity {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"status": "error", "message": err.Error()})
		return
	}

	total, err := container.Total()
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, cartResponse{
		Items:     container.Items(),
		Total:     total,
		Formatted: this.format(total),
		Count:     container.Count(),
	})
}

func (this API) format(total decimal.Decimal) string {
	currency, locale := "USD", "en"
	if this.Config != nil {
		currency = this.Config.UString("cart.currency", currency)
		locale = this.Config.UString("cart.locale", locale)
	}
	return common.FormatMoney(total, currency, locale)
}
