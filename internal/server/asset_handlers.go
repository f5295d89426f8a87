package server

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/assetrack/assetrack/internal/usecase"
)

type Asset struct {
	ID            string  `json:"id"`
	Barcode       string  `json:"barcode"`
	Type          string  `json:"type,omitempty"`
	DateAcquired  string  `json:"date_acquired,omitempty"`
	Brand         string  `json:"brand,omitempty"`
	Model         string  `json:"model,omitempty"`
	Size          string  `json:"size,omitempty"`
	Color         string  `json:"color,omitempty"`
	SerialNo      string  `json:"serial_no,omitempty"`
	PO            string  `json:"po,omitempty"`
	Warranty      string  `json:"warranty,omitempty"`
	Cost          float64 `json:"cost,omitempty"`
	Remarks       string  `json:"remarks,omitempty"`
	LIDescription string  `json:"li_description,omitempty"`
	History       string  `json:"history,omitempty"`
	Image         string  `json:"image,omitempty"`
	Status        string  `json:"status,omitempty"`
	OwnerID       string  `json:"owner_id,omitempty"`
	CreatedAt     string  `json:"created_at,omitempty"`
	UpdatedAt     string  `json:"updated_at,omitempty"`

	Owner      *Owner           `json:"owner,omitempty"`
	Components *AssetComponents `json:"components,omitempty"`
}

type Owner struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	Company     string `json:"company,omitempty"`
	Department  string `json:"department,omitempty"`
	Designation string `json:"designation,omitempty"`
}

// AssetComponents is the display shape of the aggregated hardware view;
// ssd is the comma-joined list, the full list stays internal.
type AssetComponents struct {
	RAM string `json:"ram,omitempty"`
	SSD string `json:"ssd,omitempty"`
	HDD string `json:"hdd,omitempty"`
	GPU string `json:"gpu,omitempty"`
}

func toAssetRes(a usecase.Asset) Asset {
	asset := Asset{
		ID:            a.ID.String(),
		Barcode:       a.Barcode,
		Type:          a.Type,
		Brand:         a.Brand,
		Model:         a.Model,
		Size:          a.Size,
		Color:         a.Color,
		SerialNo:      a.SerialNo,
		PO:            a.PO,
		Warranty:      a.Warranty,
		Cost:          a.Cost,
		Remarks:       a.Remarks,
		LIDescription: a.LIDescription,
		History:       a.History,
		Image:         a.Image,
		Status:        a.Status,
		CreatedAt:     a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     a.UpdatedAt.Format(time.RFC3339),
	}
	if a.DateAcquired != nil {
		asset.DateAcquired = a.DateAcquired.Format("2006-01-02")
	}
	if a.OwnerID != nil {
		asset.OwnerID = a.OwnerID.String()
	}
	if a.Owner != nil {
		asset.Owner = &Owner{
			ID:          a.Owner.ID.String(),
			Name:        a.Owner.Name,
			Email:       a.Owner.Email,
			Company:     a.Owner.Company,
			Department:  a.Owner.Department,
			Designation: a.Owner.Designation,
		}
	}
	if a.Components != nil {
		asset.Components = &AssetComponents{
			RAM: a.Components.RAM,
			SSD: a.Components.SSDDisplay(),
			HDD: a.Components.HDD,
			GPU: a.Components.GPU,
		}
	}
	return asset
}

// errorJSON maps typed usecase failures onto transport status codes.
func (s *Server) errorJSON(ctx echo.Context, err error) error {
	var nf usecase.ErrNotFound
	if errors.As(err, &nf) {
		return ctx.JSON(404, Res{Error: nf.Message})
	}
	var ve usecase.ErrValidation
	if errors.As(err, &ve) {
		return ctx.JSON(400, Res{Error: ve.Message})
	}
	return ctx.JSON(500, Res{Error: err.Error()})
}

type ListAssetsRequest struct {
	Skip   int    `query:"skip"`
	Limit  int    `query:"limit" validate:"required,gte=1,lte=100"`
	SortIn string `query:"sort_in" validate:"omitempty,oneof=asc desc"`
	Search string `query:"search"`
}

func (s *Server) ListAssets(ctx echo.Context) error {
	var req = ListAssetsRequest{Limit: 20}
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, map[string]string{"error": err.Error()})
	}
	if err := s.validator.Struct(req); err != nil {
		return ctx.JSON(422, map[string]string{"error": err.Error()})
	}

	list, total, err := s.server.ListAssets(ctx.Request().Context(), usecase.ListAssetsOption{
		Skip:   req.Skip,
		Limit:  req.Limit,
		SortIn: req.SortIn,
		Search: req.Search,
	})
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	assets := make([]Asset, 0, len(list))
	for _, a := range list {
		assets = append(assets, toAssetRes(a))
	}

	return ctx.JSON(200, Res{
		Data: assets,
		Meta: &Meta{
			Total: total,
			Skip:  req.Skip,
			Limit: req.Limit,
		},
	})
}

type GetAssetByIDRequest struct {
	ID string `param:"id" validate:"required,uuid"`
}

func (s *Server) GetAssetByID(ctx echo.Context) error {
	var req GetAssetByIDRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, map[string]string{"error": err.Error()})
	}
	if err := s.validator.Struct(req); err != nil {
		return ctx.JSON(422, map[string]string{"error": err.Error()})
	}

	id, _ := uuid.Parse(req.ID)
	a, err := s.server.GetAssetByID(ctx.Request().Context(), id)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(200, Res{Data: toAssetRes(a)})
}

type GetAssetsByOwnerIDRequest struct {
	OwnerID string `param:"owner_id" validate:"required,uuid"`
}

func (s *Server) GetAssetsByOwnerID(ctx echo.Context) error {
	var req GetAssetsByOwnerIDRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, map[string]string{"error": err.Error()})
	}
	if err := s.validator.Struct(req); err != nil {
		return ctx.JSON(422, map[string]string{"error": err.Error()})
	}

	ownerID, _ := uuid.Parse(req.OwnerID)
	list, err := s.server.GetAssetsByOwnerID(ctx.Request().Context(), ownerID)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	assets := make([]Asset, 0, len(list))
	for _, a := range list {
		assets = append(assets, toAssetRes(a))
	}

	return ctx.JSON(200, Res{Data: assets})
}

func (s *Server) ListVacantAssets(ctx echo.Context) error {
	list, err := s.server.ListVacantAssets(ctx.Request().Context())
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	if len(list) == 0 {
		return ctx.JSON(404, Res{Message: "no vacant assets available"})
	}

	assets := make([]Asset, 0, len(list))
	for _, a := range list {
		assets = append(assets, toAssetRes(a))
	}

	return ctx.JSON(200, Res{Data: assets})
}

type CreateAssetRequest struct {
	Barcode       string  `json:"barcode" validate:"required"`
	Type          string  `json:"type"`
	DateAcquired  string  `json:"date_acquired" validate:"omitempty,datetime=2006-01-02"`
	Brand         string  `json:"brand"`
	Model         string  `json:"model"`
	Size          string  `json:"size"`
	Color         string  `json:"color"`
	SerialNo      string  `json:"serial_no"`
	PO            string  `json:"po"`
	Warranty      string  `json:"warranty"`
	Cost          float64 `json:"cost" validate:"omitempty,gte=0"`
	Remarks       string  `json:"remarks"`
	LIDescription string  `json:"li_description"`
	Image         string  `json:"image"`

	OwnerName        string `json:"owner_name"`
	OwnerEmail       string `json:"owner_email" validate:"omitempty,email"`
	OwnerCompany     string `json:"owner_company"`
	OwnerDepartment  string `json:"owner_department"`
	OwnerDesignation string `json:"owner_designation"`
}

func (s *Server) CreateAsset(ctx echo.Context) error {
	var req CreateAssetRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, map[string]string{"error": err.Error()})
	}
	if err := s.validator.Struct(req); err != nil {
		return ctx.JSON(422, map[string]string{"error": err.Error()})
	}

	var dateAcquired *time.Time
	if req.DateAcquired != "" {
		d, _ := time.Parse("2006-01-02", req.DateAcquired)
		dateAcquired = &d
	}

	a, err := s.server.CreateAsset(ctx.Request().Context(), usecase.Asset{
		Barcode:       req.Barcode,
		Type:          req.Type,
		DateAcquired:  dateAcquired,
		Brand:         req.Brand,
		Model:         req.Model,
		Size:          req.Size,
		Color:         req.Color,
		SerialNo:      req.SerialNo,
		PO:            req.PO,
		Warranty:      req.Warranty,
		Cost:          req.Cost,
		Remarks:       req.Remarks,
		LIDescription: req.LIDescription,
		Image:         req.Image,
	}, usecase.OwnerFields{
		Name:        req.OwnerName,
		Email:       req.OwnerEmail,
		Company:     req.OwnerCompany,
		Department:  req.OwnerDepartment,
		Designation: req.OwnerDesignation,
	})
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(201, Res{Data: toAssetRes(a)})
}

type UpdateAssetRequest struct {
	ID string `param:"id" validate:"required,uuid"`

	Barcode       string  `json:"barcode" validate:"required"`
	Type          string  `json:"type"`
	DateAcquired  string  `json:"date_acquired" validate:"omitempty,datetime=2006-01-02"`
	Brand         string  `json:"brand"`
	Model         string  `json:"model"`
	Size          string  `json:"size"`
	Color         string  `json:"color"`
	SerialNo      string  `json:"serial_no"`
	PO            string  `json:"po"`
	Warranty      string  `json:"warranty"`
	Cost          float64 `json:"cost" validate:"omitempty,gte=0"`
	Remarks       string  `json:"remarks"`
	LIDescription string  `json:"li_description"`
	UpdateImage   *string `json:"update_image" validate:"omitempty"`

	OwnerName        string `json:"owner_name"`
	OwnerEmail       string `json:"owner_email" validate:"omitempty,email"`
	OwnerCompany     string `json:"owner_company"`
	OwnerDepartment  string `json:"owner_department"`
	OwnerDesignation string `json:"owner_designation"`
}

func (s *Server) UpdateAsset(ctx echo.Context) error {
	var req UpdateAssetRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, map[string]string{"error": err.Error()})
	}
	if err := s.validator.Struct(req); err != nil {
		return ctx.JSON(422, map[string]string{"error": err.Error()})
	}

	var dateAcquired *time.Time
	if req.DateAcquired != "" {
		d, _ := time.Parse("2006-01-02", req.DateAcquired)
		dateAcquired = &d
	}

	id, _ := uuid.Parse(req.ID)
	a, err := s.server.UpdateAsset(ctx.Request().Context(), id, usecase.Asset{
		Barcode:       req.Barcode,
		Type:          req.Type,
		DateAcquired:  dateAcquired,
		Brand:         req.Brand,
		Model:         req.Model,
		Size:          req.Size,
		Color:         req.Color,
		SerialNo:      req.SerialNo,
		PO:            req.PO,
		Warranty:      req.Warranty,
		Cost:          req.Cost,
		Remarks:       req.Remarks,
		LIDescription: req.LIDescription,
		UpdateImage:   req.UpdateImage,
	}, usecase.OwnerFields{
		Name:        req.OwnerName,
		Email:       req.OwnerEmail,
		Company:     req.OwnerCompany,
		Department:  req.OwnerDepartment,
		Designation: req.OwnerDesignation,
	})
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(200, Res{Message: "asset updated successfully", Data: toAssetRes(a)})
}

type AssignAssetOwnerRequest struct {
	ID      string `param:"id" validate:"required,uuid"`
	OwnerID string `json:"owner_id" validate:"required,uuid"`
}

func (s *Server) AssignAssetOwner(ctx echo.Context) error {
	var req AssignAssetOwnerRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, map[string]string{"error": err.Error()})
	}
	if err := s.validator.Struct(req); err != nil {
		return ctx.JSON(422, map[string]string{"error": err.Error()})
	}

	id, _ := uuid.Parse(req.ID)
	ownerID, _ := uuid.Parse(req.OwnerID)
	a, err := s.server.AssignOwner(ctx.Request().Context(), id, ownerID)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(200, Res{Message: "owner assigned successfully to the asset", Data: toAssetRes(a)})
}

type PullOutAssetRequest struct {
	ID string `param:"id" validate:"required,uuid"`
}

func (s *Server) PullOutAsset(ctx echo.Context) error {
	var req PullOutAssetRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, map[string]string{"error": err.Error()})
	}
	if err := s.validator.Struct(req); err != nil {
		return ctx.JSON(422, map[string]string{"error": err.Error()})
	}

	id, _ := uuid.Parse(req.ID)
	if err := s.server.PullOutAsset(ctx.Request().Context(), id); err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(200, Res{Message: "asset pulled out successfully"})
}

type DeleteAssetRequest struct {
	ID string `param:"id" validate:"required,uuid"`
}

func (s *Server) DeleteAsset(ctx echo.Context) error {
	var req DeleteAssetRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, map[string]string{"error": err.Error()})
	}
	if err := s.validator.Struct(req); err != nil {
		return ctx.JSON(422, map[string]string{"error": err.Error()})
	}

	id, _ := uuid.Parse(req.ID)
	result, err := s.server.DeleteAsset(ctx.Request().Context(), id)
	if err != nil {
		return ctx.JSON(result.StatusCode, Res{Error: result.Message})
	}
	if !result.Success {
		return ctx.JSON(result.StatusCode, Res{Message: result.Message})
	}

	return ctx.JSON(200, Res{
		Message: result.Message,
		Data:    map[string]string{"asset_id": req.ID},
	})
}
