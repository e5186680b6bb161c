package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

// messages are the user-facing texts for business error codes.
var messages = map[string]string{
	"no_services_selected":                 "Selecione ao menos um serviço.",
	"invalid_date":                         "Data inválida.",
	"invalid_date_or_time":                 "Data ou hora inválida.",
	"invalid_working_hours":                "Horário de atendimento inválido.",
	"invalid_slot_count":                   "Quantidade de horários inválida.",
	"missing_ids":                          "Informe ao menos um agendamento.",
	"missing_client":                       "Cliente não identificado.",
	"invalid_phone":                        "Telefone inválido.",
	"invalid_range":                        "Período inválido.",
	"invalid_request":                      "Dados inválidos.",
	"invalid_id":                           "Identificador inválido.",
	"slot_unavailable":                     "Horário indisponível. Escolha outro horário.",
	"insufficient_contiguous_availability": "Não há horários seguidos suficientes. Escolha outro horário.",
	"outside_working_hours":                "Fora do horário de atendimento.",
	"slot_in_past":                         "Esse horário já passou.",
	"slot_conflict":                        "Esse horário acabou de ser reservado. Atualize a agenda.",
	"service_not_found":                    "Serviço não encontrado.",
	"professional_not_found":               "Profissional não encontrado.",
	"barbershop_not_found":                 "Barbearia não encontrada.",
}

var errInvalidID = errors.New("invalid id")

func respondError(c *gin.Context, err error) {
	httperr.Respond(c, err, messages)
}

func badRequest(c *gin.Context, code string) {
	httperr.BadRequest(c, code, messages[code])
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		badRequest(c, "invalid_id")
		return 0, false
	}
	return uint(id), true
}

// parseIDList reads "1,2,3". Empty input is an empty list.
func parseIDList(raw string) ([]uint, error) {
	var out []uint
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 64)
		if err != nil || id == 0 {
			return nil, errInvalidID
		}
		out = append(out, uint(id))
	}
	return out, nil
}
