package service

import (
	"fleetdesk/cmd/internal/contract"
	"fleetdesk/cmd/internal/domain/entity"
	"fleetdesk/cmd/internal/utils"
)

// Request -> entity mapping only touches caller owned fields. IDs, the client
// UUID and timestamps are set by the services, derived fields are never read.

func applyClientRequest(client *entity.Client, req *contract.ClientRequest, coop *entity.Cooperative) {
	client.Name = req.Name
	client.TaxCode = req.TaxCode
	client.StateRegistration = req.StateRegistration
	client.Address = req.Address
	client.Neighborhood = req.Neighborhood
	client.Complement = req.Complement
	client.Number = req.Number
	client.PostalCode = req.PostalCode
	client.City = req.City
	client.State = req.State
	client.Contacts = req.Contacts
	client.Phones = req.Phones
	client.Active = boolOr(req.Active, true)
	client.CooperativeMember = boolOr(req.CooperativeMember, false)

	client.CooperativeID = nil
	if coop != nil {
		client.CooperativeID = &coop.ID
	}
}

func toClientResponse(client *entity.Client, coop *entity.Cooperative) *contract.ClientResponse {
	resp := &contract.ClientResponse{
		ID:                client.ID,
		UUID:              client.UUID,
		Name:              client.Name,
		TaxCode:           client.TaxCode,
		StateRegistration: client.StateRegistration,
		Address:           client.Address,
		Neighborhood:      client.Neighborhood,
		Complement:        client.Complement,
		Number:            client.Number,
		PostalCode:        client.PostalCode,
		City:              client.City,
		State:             client.State,
		Contacts:          client.Contacts,
		Phones:            client.Phones,
		Active:            client.Active,
		CooperativeMember: client.CooperativeMember,
		CooperativeID:     client.CooperativeID,
		CreatedAt:         utils.FormatEpoch(client.CreatedAt),
		UpdatedAt:         utils.FormatEpoch(client.UpdatedAt),
	}

	if coop != nil {
		resp.CooperativeName = coop.Name
	}
	return resp
}

func applyCooperativeRequest(coop *entity.Cooperative, req *contract.CooperativeRequest) {
	coop.Name = req.Name
	coop.TaxCode = req.TaxCode
	coop.Address = req.Address
	coop.City = req.City
	coop.State = req.State
	coop.PostalCode = req.PostalCode
	coop.Active = boolOr(req.Active, true)
}

func toCooperativeResponse(coop *entity.Cooperative) *contract.CooperativeResponse {
	return &contract.CooperativeResponse{
		ID:         coop.ID,
		Name:       coop.Name,
		TaxCode:    coop.TaxCode,
		Address:    coop.Address,
		City:       coop.City,
		State:      coop.State,
		PostalCode: coop.PostalCode,
		Active:     coop.Active,
		CreatedAt:  utils.FormatEpoch(coop.CreatedAt),
		UpdatedAt:  utils.FormatEpoch(coop.UpdatedAt),
	}
}

// applyEquipmentRequest expects ownership tags already accepted by EquipmentPolicy.
func applyEquipmentRequest(equip *entity.Equipment, req *contract.EquipmentRequest, model *entity.Model) {
	equipOwnership, _ := entity.ParseOwnership(req.EquipmentOwnership)
	chipOwnership, _ := entity.ParseOwnership(req.ChipOwnership)

	equip.IMEI = req.IMEI
	equip.PhoneNumber = req.PhoneNumber
	equip.SerialNumber = req.SerialNumber
	equip.Notes = req.Notes
	equip.Carrier = req.Carrier
	equip.Active = boolOr(req.Active, true)
	equip.EquipmentOwnership = equipOwnership
	equip.ChipOwnership = chipOwnership
	equip.ModelID = model.ID
	equip.Allocated = boolOr(req.Allocated, false)
}

func toEquipmentResponse(equip *entity.Equipment, model *entity.Model) *contract.EquipmentResponse {
	resp := &contract.EquipmentResponse{
		ID:                 equip.ID,
		IMEI:               equip.IMEI,
		PhoneNumber:        equip.PhoneNumber,
		SerialNumber:       equip.SerialNumber,
		Notes:              equip.Notes,
		Carrier:            equip.Carrier,
		Active:             equip.Active,
		EquipmentOwnership: string(equip.EquipmentOwnership),
		ChipOwnership:      string(equip.ChipOwnership),
		ModelID:            equip.ModelID,
		Allocated:          equip.Allocated,
		CreatedAt:          utils.FormatEpoch(equip.CreatedAt),
		UpdatedAt:          utils.FormatEpoch(equip.UpdatedAt),
	}

	if model != nil {
		resp.ModelBrand = model.Brand
		resp.ModelManufacturer = model.Manufacturer
	}
	return resp
}

// applyModelRequest expects a category already accepted by ModelPolicy.
func applyModelRequest(model *entity.Model, req *contract.ModelRequest) {
	category, _ := entity.ParseModelCategory(req.Category)

	model.Manufacturer = req.Manufacturer
	model.Brand = req.Brand
	model.Category = category
	model.Active = *req.Active
}

func toModelResponse(model *entity.Model) *contract.ModelResponse {
	return &contract.ModelResponse{
		ID:           model.ID,
		Manufacturer: model.Manufacturer,
		Brand:        model.Brand,
		Category:     string(model.Category),
		Active:       model.Active,
		CreatedAt:    utils.FormatEpoch(model.CreatedAt),
		UpdatedAt:    utils.FormatEpoch(model.UpdatedAt),
	}
}

func applyProductRequest(product *entity.Product, req *contract.ProductRequest) {
	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.Quantity = *req.Quantity
}

func toProductResponse(product *entity.Product) *contract.ProductResponse {
	return &contract.ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Quantity:    product.Quantity,
		CreatedAt:   utils.FormatEpoch(product.CreatedAt),
		UpdatedAt:   utils.FormatEpoch(product.UpdatedAt),
	}
}
