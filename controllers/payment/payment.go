package paymentControllers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/iamshreyas-06/ARTISAN-SPACE-sub001/mailer"
	"github.com/iamshreyas-06/ARTISAN-SPACE-sub001/models"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/checkout/session"
	"gorm.io/gorm"
)

type CreateSessionInput struct {
	OrderRef string `json:"order_ref" binding:"required"`
}

// POST /payment/session
//
// Creates a hosted checkout session for a placed, still-unpaid order. The
// order reference travels in the session and payment-intent metadata so the
// webhook can find its way back.
func CreateCheckoutSession(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var input CreateSessionInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var order models.Order
		if err := db.Scopes(models.Active).
			Where("order_ref = ? AND user_id = ?", input.OrderRef, userID).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		if order.PaymentStatus == models.PaymentStatusPaid {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Order is already paid"})
			return
		}

		sKey := os.Getenv("STRIPE_SECRET_KEY")
		if sKey == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe secret key not found"})
			return
		}
		stripe.Key = sKey

		amountCents := decimal.NewFromFloat(order.Money).Mul(decimal.NewFromInt(100)).Round(0).IntPart()

		params := &stripe.CheckoutSessionParams{
			SubmitType: stripe.String("pay"),
			Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
			LineItems: []*stripe.CheckoutSessionLineItemParams{
				{
					PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
						Currency: stripe.String(string(stripe.CurrencyUSD)),
						ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
							Name: stripe.String("Order " + order.OrderRef),
						},
						UnitAmount: stripe.Int64(amountCents),
					},
					Quantity: stripe.Int64(1),
				},
			},
			SuccessURL: stripe.String(os.Getenv("PAYMENT_SUCCESS_URL")),
			CancelURL:  stripe.String(os.Getenv("PAYMENT_CANCEL_URL")),
			PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
				Metadata: map[string]string{
					"order_ref": order.OrderRef,
					"user_id":   order.UserID,
				},
			},
		}
		params.AddMetadata("order_ref", order.OrderRef)

		sessionStripe, err := session.New(params)
		if err != nil {
			slog.Error("error creating Stripe checkout session",
				slog.String("order_ref", order.OrderRef), slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to create checkout session"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"checkout_session_url": sessionStripe.URL})
	}
}

// POST /payment/webhook
//
// The signature is verified by middleware; this handler only applies the
// event to the order's payment fields.
func WebhookHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		event, ok := verifiedEvent(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid webhook payload"})
			return
		}

		switch event.Type {
		case "checkout.session.completed":
			var sess stripe.CheckoutSession
			if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			paymentID := sess.ID
			if sess.PaymentIntent != nil && sess.PaymentIntent.ID != "" {
				paymentID = sess.PaymentIntent.ID
			}
			markPayment(db, c, sess.Metadata["order_ref"], models.PaymentStatusPaid, paymentID)

		case "payment_intent.payment_failed":
			var intent stripe.PaymentIntent
			if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			markPayment(db, c, intent.Metadata["order_ref"], models.PaymentStatusFailed, intent.ID)

		default:
			slog.Info("unhandled Stripe event type", slog.String("event_type", string(event.Type)))
			c.JSON(http.StatusOK, gin.H{"message": "Event type not handled"})
		}
	}
}

// verifiedEvent pulls the event the signature middleware stored, falling back
// to parsing the raw payload in sandbox/dev mode.
func verifiedEvent(c *gin.Context) (stripe.Event, bool) {
	if v, exists := c.Get("stripe_event"); exists {
		if event, ok := v.(stripe.Event); ok {
			return event, true
		}
	}
	if v, exists := c.Get("stripe_payload"); exists {
		if payload, ok := v.([]byte); ok {
			var event stripe.Event
			if err := json.Unmarshal(payload, &event); err == nil {
				return event, true
			}
		}
	}
	return stripe.Event{}, false
}

func markPayment(db *gorm.DB, c *gin.Context, orderRef string, status models.PaymentStatus, paymentID string) {
	if orderRef == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing order_ref metadata"})
		return
	}

	var order models.Order
	if err := db.Scopes(models.Active).Where("order_ref = ?", orderRef).First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	updates := map[string]interface{}{
		"payment_status": status,
		"payment_id":     paymentID,
	}
	if err := db.Model(&order).Updates(updates).Error; err != nil {
		slog.Error("failed to update payment status",
			slog.String("order_ref", orderRef), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update payment status"})
		return
	}

	if status == models.PaymentStatusPaid {
		var user models.User
		if db.First(&user, "id = ?", order.UserID).Error == nil {
			go mailer.Send(user.Email, "Payment received",
				"We received your payment for order "+order.OrderRef+". Your items are on the way soon.")
		}
	}

	c.Status(http.StatusOK)
}
