package sqlstore

import (
	"github.com/cfelipe-app/Route/internal/capacity"
	"github.com/cfelipe-app/Route/internal/driver"
	"github.com/cfelipe-app/Route/internal/offer"
	"github.com/cfelipe-app/Route/internal/order"
	"github.com/cfelipe-app/Route/internal/provider"
	"github.com/cfelipe-app/Route/internal/vehicle"
)

// Providers maps providers onto the 'providers' table
var Providers = &Table[*provider.Provider]{
	Name:    "providers",
	Fields:  provider.Fields,
	Columns: []string{"id", "name", "tax_id", "contact_name", "phone", "email", "address", "is_active", "created_at"},
	Scan: func(row Scanner) (*provider.Provider, error) {
		obj := new(provider.Provider)
		err := row.Scan(
			&obj.ID,
			&obj.Name,
			&obj.TaxID,
			&obj.ContactName,
			&obj.Phone,
			&obj.Email,
			&obj.Address,
			&obj.IsActive,
			&obj.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		return obj, nil
	},
	Values: func(obj *provider.Provider) []any {
		return []any{obj.Name, obj.TaxID, obj.ContactName, obj.Phone, obj.Email, obj.Address, obj.IsActive, obj.CreatedAt}
	},
}

// Vehicles maps vehicles onto the 'vehicles' table
var Vehicles = &Table[*vehicle.Vehicle]{
	Name:   "vehicles",
	Fields: vehicle.Fields,
	Columns: []string{
		"id",
		"provider_id",
		"plate",
		"model",
		"brand",
		"capacity_kg",
		"capacity_vol_m3",
		"seats",
		"type",
		"is_active",
		"capacity_tonnage_label",
	},
	Scan: func(row Scanner) (*vehicle.Vehicle, error) {
		obj := new(vehicle.Vehicle)
		err := row.Scan(
			&obj.ID,
			&obj.ProviderID,
			&obj.Plate,
			&obj.Model,
			&obj.Brand,
			&obj.CapacityKg,
			&obj.CapacityVolM3,
			&obj.Seats,
			&obj.Type,
			&obj.IsActive,
			&obj.CapacityTonnageLabel,
		)
		if err != nil {
			return nil, err
		}
		return obj, nil
	},
	Values: func(obj *vehicle.Vehicle) []any {
		return []any{
			obj.ProviderID,
			obj.Plate,
			obj.Model,
			obj.Brand,
			obj.CapacityKg,
			obj.CapacityVolM3,
			obj.Seats,
			obj.Type,
			obj.IsActive,
			obj.CapacityTonnageLabel,
		}
	},
}

// Drivers maps drivers onto the 'drivers' table
var Drivers = &Table[*driver.Driver]{
	Name:   "drivers",
	Fields: driver.Fields,
	Columns: []string{
		"id",
		"full_name",
		"document_id",
		"phone",
		"email",
		"license_number",
		"license_class",
		"is_active",
		"provider_id",
		"created_at",
	},
	Scan: func(row Scanner) (*driver.Driver, error) {
		obj := new(driver.Driver)
		err := row.Scan(
			&obj.ID,
			&obj.FullName,
			&obj.DocumentID,
			&obj.Phone,
			&obj.Email,
			&obj.LicenseNumber,
			&obj.LicenseClass,
			&obj.IsActive,
			&obj.ProviderID,
			&obj.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		return obj, nil
	},
	Values: func(obj *driver.Driver) []any {
		return []any{
			obj.FullName,
			obj.DocumentID,
			obj.Phone,
			obj.Email,
			obj.LicenseNumber,
			obj.LicenseClass,
			obj.IsActive,
			obj.ProviderID,
			obj.CreatedAt,
		}
	},
}

// Orders maps orders onto the 'orders' table
var Orders = &Table[*order.Order]{
	Name:   "orders",
	Fields: order.Fields,
	Columns: []string{
		"id",
		"external_order_no",
		"customer_name",
		"customer_tax_id",
		"address",
		"district",
		"lat",
		"lng",
		"weight_kg",
		"volume_m3",
		"amount",
		"status",
		"scheduled_at",
		"created_at",
	},
	Scan: func(row Scanner) (*order.Order, error) {
		obj := new(order.Order)
		var status string
		err := row.Scan(
			&obj.ID,
			&obj.ExternalOrderNo,
			&obj.CustomerName,
			&obj.CustomerTaxID,
			&obj.Address,
			&obj.District,
			&obj.Lat,
			&obj.Lng,
			&obj.WeightKg,
			&obj.VolumeM3,
			&obj.Amount,
			&status,
			&obj.ScheduledAt,
			&obj.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		obj.Status = order.Status(status)
		return obj, nil
	},
	Values: func(obj *order.Order) []any {
		return []any{
			obj.ExternalOrderNo,
			obj.CustomerName,
			obj.CustomerTaxID,
			obj.Address,
			obj.District,
			obj.Lat,
			obj.Lng,
			obj.WeightKg,
			obj.VolumeM3,
			obj.Amount,
			string(obj.Status),
			obj.ScheduledAt,
			obj.CreatedAt,
		}
	},
}

// CapacityRequests maps capacity requests onto the 'capacity_requests' table
var CapacityRequests = &Table[*capacity.Request]{
	Name:   "capacity_requests",
	Fields: capacity.Fields,
	Columns: []string{
		"id",
		"service_date",
		"zone",
		"window_start",
		"window_end",
		"required_vehicles",
		"total_weight_kg",
		"total_volume_m3",
		"status",
		"created_by",
		"created_at",
		"only_target_provider",
		"provider_id",
	},
	Scan: func(row Scanner) (*capacity.Request, error) {
		obj := new(capacity.Request)
		var status string
		err := row.Scan(
			&obj.ID,
			&obj.ServiceDate,
			&obj.Zone,
			&obj.WindowStart,
			&obj.WindowEnd,
			&obj.RequiredVehicles,
			&obj.TotalWeightKg,
			&obj.TotalVolumeM3,
			&status,
			&obj.CreatedBy,
			&obj.CreatedAt,
			&obj.OnlyTargetProvider,
			&obj.ProviderID,
		)
		if err != nil {
			return nil, err
		}
		obj.Status = capacity.Status(status)
		return obj, nil
	},
	Values: func(obj *capacity.Request) []any {
		return []any{
			obj.ServiceDate,
			obj.Zone,
			obj.WindowStart,
			obj.WindowEnd,
			obj.RequiredVehicles,
			obj.TotalWeightKg,
			obj.TotalVolumeM3,
			string(obj.Status),
			obj.CreatedBy,
			obj.CreatedAt,
			obj.OnlyTargetProvider,
			obj.ProviderID,
		}
	},
}

// Offers maps vehicle offers onto the 'vehicle_offers' table
var Offers = &Table[*offer.Offer]{
	Name:   "vehicle_offers",
	Fields: offer.Fields,
	Columns: []string{
		"id",
		"capacity_request_id",
		"provider_id",
		"vehicle_id",
		"offered_weight_kg",
		"offered_volume_m3",
		"price",
		"currency",
		"notes",
		"status",
		"created_at",
		"decision_at",
		"decided_by",
		"request_private",
		"request_target_provider_id",
	},
	Scan: func(row Scanner) (*offer.Offer, error) {
		obj := new(offer.Offer)
		var status string
		err := row.Scan(
			&obj.ID,
			&obj.CapacityRequestID,
			&obj.ProviderID,
			&obj.VehicleID,
			&obj.OfferedWeightKg,
			&obj.OfferedVolumeM3,
			&obj.Price,
			&obj.Currency,
			&obj.Notes,
			&status,
			&obj.CreatedAt,
			&obj.DecisionAt,
			&obj.DecidedBy,
			&obj.RequestPrivate,
			&obj.RequestTargetProviderID,
		)
		if err != nil {
			return nil, err
		}
		obj.Status = offer.Status(status)
		return obj, nil
	},
	Values: func(obj *offer.Offer) []any {
		return []any{
			obj.CapacityRequestID,
			obj.ProviderID,
			obj.VehicleID,
			obj.OfferedWeightKg,
			obj.OfferedVolumeM3,
			obj.Price,
			obj.Currency,
			obj.Notes,
			string(obj.Status),
			obj.CreatedAt,
			obj.DecisionAt,
			obj.DecidedBy,
			obj.RequestPrivate,
			obj.RequestTargetProviderID,
		}
	},
}
