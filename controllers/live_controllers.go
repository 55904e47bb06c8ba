package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/yeremiapane/sangem-ordering/hub"
	"github.com/yeremiapane/sangem-ordering/services"
	"github.com/yeremiapane/sangem-ordering/utils"
)

// LiveController upgrades dashboards to a websocket that receives order
// events. Clients still refetch after their own writes.
type LiveController struct {
	Hub      *hub.Hub
	Delivery *services.DeliveryService
	upgrader websocket.Upgrader
}

func NewLiveController(h *hub.Hub, delivery *services.DeliveryService, allowedOrigins []string) *LiveController {
	return &LiveController{
		Hub:      h,
		Delivery: delivery,
		upgrader: websocket.Upgrader{CheckOrigin: originChecker(allowedOrigins)},
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, a := range allowed {
			if a == "*" || a == origin {
				return true
			}
		}
		return false
	}
}

func (lc *LiveController) Connect(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	sub := hub.Subscriber{Role: sess.Role, BranchID: sess.BranchID}
	if sess.IsDelivery() {
		partner, err := lc.Delivery.ResolvePartner(c.Request.Context(), sess)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		sub.PartnerID = partner.ID
	}

	conn, err := lc.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.Warnf("websocket upgrade failed: %v", err)
		return
	}
	lc.Hub.Register(conn, sub)

	// read until the client goes away; inbound messages are ignored
	go func() {
		defer lc.Hub.Unregister(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
