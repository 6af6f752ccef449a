package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/resto-lite/kds"
	"github.com/yeremiapane/resto-lite/state"
	"github.com/yeremiapane/resto-lite/utils"
)

type KitchenController struct {
	App *state.App
}

func NewKitchenController(app *state.App) *KitchenController {
	return &KitchenController{App: app}
}

// GetTickets -> seluruh antrian dapur, paling baru di depan
func (kc *KitchenController) GetTickets(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Kitchen queue", kc.App.Tickets())
}

// SubmitOrder -> bekukan order aktif menjadi ticket pending di antrian.
// Order kosong ditolak dan tidak mengubah apa-apa.
func (kc *KitchenController) SubmitOrder(c *gin.Context) {
	ticket, err := kc.App.Submit()
	if err != nil {
		if errors.Is(err, state.ErrEmptyOrder) {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	kds.BroadcastTicketCreate(ticket)

	var total float64
	for _, line := range ticket.Items {
		total += line.Price * float64(line.Qty)
	}
	utils.InfoLogger.Printf("Ticket %d sent to kitchen (table %d, %d lines, total %s)",
		ticket.ID, ticket.Table, len(ticket.Items), utils.FormatCurrency(total))

	utils.RespondJSON(c, http.StatusCreated, "Order sent to kitchen", ticket)
}

// MarkDone -> transisi pending -> done. Ticket yang sudah done dibiarkan
// (idempoten); id tak dikenal -> 404.
func (kc *KitchenController) MarkDone(c *gin.Context) {
	ticketID, err := strconv.ParseInt(c.Param("ticket_id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid ticket_id"))
		return
	}

	ticket, changed, err := kc.App.MarkDone(ticketID)
	if err != nil {
		if errors.Is(err, state.ErrUnknownTicket) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if changed {
		kds.BroadcastTicketDone(ticket)
		utils.InfoLogger.Printf("Ticket %d marked done (table %d)", ticket.ID, ticket.Table)
	}
	utils.RespondJSON(c, http.StatusOK, "Ticket done", ticket)
}
