package controllers

import (
	"fmt"
	"net/http"
	"time"

	"workshop-system/internal/dto"
	"workshop-system/internal/services"
	"workshop-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ReportController выгружает заказы пользователей в xlsx.
type ReportController struct {
	userOrderService services.UserOrderServiceInterface
	logger           *zap.Logger
}

func NewReportController(userOrderService services.UserOrderServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{userOrderService: userOrderService, logger: logger}
}

var userOrderReportHeaders = []interface{}{
	"ID", "Время заказа", "Пользователь", "Email", "Бригада",
	"Модель", "Серийный номер", "Тип оборудования", "Состояние",
}

func userOrderRow(item dto.UserOrderDTO) []interface{} {
	var userName, email, team, model, serial, eqType, eqCond string
	if item.User != nil {
		userName = item.User.Name + " " + item.User.Surname
		email = item.User.Email
		if item.User.Team != nil {
			team = item.User.Team.Name
		}
	}
	if item.Equipment != nil {
		model = item.Equipment.Model
		serial = item.Equipment.SerialNumber
		if item.Equipment.EquipmentType != nil {
			eqType = item.Equipment.EquipmentType.Name
		}
		if item.Equipment.EquipmentCondition != nil {
			eqCond = item.Equipment.EquipmentCondition.Name
		}
	}

	return []interface{}{
		item.ID, item.TimeOfOrder, userName, email, team,
		model, serial, eqType, eqCond,
	}
}

func (c *ReportController) ExportUserOrders(ctx echo.Context) error {
	data, err := c.userOrderService.GetUserOrders(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return c.respondWithXLSX(ctx, data)
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, data []dto.UserOrderDTO) error {
	f := excelize.NewFile()
	sheet := "Заказы пользователей"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &userOrderReportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "I1", style)

	for i, item := range data {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := userOrderRow(item)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "B", "B", 22)
	f.SetColWidth(sheet, "C", "E", 25)
	f.SetColWidth(sheet, "F", "I", 20)

	fileName := fmt.Sprintf("user_orders_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
