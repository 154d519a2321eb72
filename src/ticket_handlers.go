package main

import (
	"context"
	"errors"
	"etix/src/lib"
	"etix/src/middlewares"
	"etix/src/types"
	"etix/src/utils"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// businessErrorStatus maps the core's typed failures to response codes.
// Anything unrecognized is a persistence failure.
func businessErrorStatus(err error) int {
	var voided *types.TicketVoidedError
	switch {
	case errors.Is(err, types.ErrEventNotFound),
		errors.Is(err, types.ErrTicketNotFound),
		errors.Is(err, types.ErrPaymentNotFound):
		return http.StatusNotFound
	case errors.Is(err, types.ErrInsufficientInventory),
		errors.Is(err, types.ErrInvalidQuantity),
		errors.Is(err, types.ErrInvalidQRFormat),
		errors.Is(err, types.ErrTicketAlreadyUsed),
		errors.Is(err, types.ErrEventNotOnSale),
		errors.As(err, &voided):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func ticketHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/tickets", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			tickets, err := utils.GetOwnTickets(userId)
			if err != nil {
				log.Printf("Error retrieving Tickets for User [%d]: %s\n", userId, err.Error())
				ctx.Status(http.StatusBadRequest)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": tickets, "count": len(tickets)})
		}).
		GET("/tickets/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ticket, err := utils.GetTicket(params.ID)
			if err != nil {
				ctx.JSON(businessErrorStatus(err), gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			role := ctx.GetString("role")
			if ticket.UserID != userId && role != types.ROLE_ADMIN && role != types.ROLE_STAFF {
				ctx.Status(http.StatusForbidden)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": ticket})
		}).
		GET("/tickets/:id/code", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			// The cache key carries the owner, so a hit can only serve the
			// account that populated it.
			cacheKey := fmt.Sprintf("ticketcode_%d_%d", userId, params.ID)
			rd := lib.GetRedisClient()
			if rd != nil {
				content, err := rd.Get(context.Background(), cacheKey).Result()
				if err != nil && !errors.Is(err, redis.Nil) {
					log.Printf("Error reading from cache: %s\n", err.Error())
				}
				if content != "" {
					ctx.JSON(http.StatusOK, gin.H{"qr_code": content})
					return
				}
			}
			ticket, err := utils.GetTicket(params.ID)
			if err != nil {
				ctx.JSON(businessErrorStatus(err), gin.H{"error": err.Error()})
				return
			}
			if ticket.UserID != userId {
				ctx.Status(http.StatusForbidden)
				return
			}
			if rd != nil {
				rd.SetEx(context.Background(), cacheKey, ticket.QRCode, 2*time.Hour)
			}
			ctx.JSON(http.StatusOK, gin.H{"qr_code": ticket.QRCode})
		}).
		POST("/tickets", func(ctx *gin.Context) {
			var body types.PurchaseTicketsRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			tickets, err := utils.PurchaseTickets(userId, &body)
			if err != nil {
				log.Printf("error purchasing tickets: %s", err.Error())
				ctx.JSON(businessErrorStatus(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": tickets, "count": len(tickets)})
		}).
		POST("/tickets/verify", middlewares.RequireRole(types.ROLE_STAFF, types.ROLE_ADMIN), func(ctx *gin.Context) {
			var body types.VerifyTicketRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			actorId := ctx.GetUint("id")
			receipt, err := utils.VerifyTicket(body.QRData, actorId)
			if err != nil {
				ctx.JSON(businessErrorStatus(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": receipt})
		}).
		PUT("/tickets/:id/status", middlewares.RequireRole(types.ROLE_ADMIN), func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdateTicketStatusRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ticket, err := utils.UpdateTicketStatus(params.ID, body.Status)
			if err != nil {
				ctx.JSON(businessErrorStatus(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": ticket})
		}).
		DELETE("/tickets/:id", middlewares.RequireRole(types.ROLE_ADMIN), func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if err := utils.DeleteTicket(params.ID); err != nil {
				ctx.JSON(businessErrorStatus(err), gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}
