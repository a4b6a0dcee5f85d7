package memory

import (
	"fmt"

	"github.com/cfelipe-app/Route/internal/capacity"
	"github.com/cfelipe-app/Route/internal/driver"
	"github.com/cfelipe-app/Route/internal/offer"
	"github.com/cfelipe-app/Route/internal/storage"
	"github.com/cfelipe-app/Route/internal/vehicle"
	"github.com/hashicorp/go-memdb"
)

// requireRecord returns a wrapped storage.ErrUnknownReference if no record with the given ID exists in a table
func requireRecord(txn *memdb.Txn, tableName string, id int64) error {
	obj, err := txn.First(tableName, "id", id)
	if err != nil {
		return err
	}
	if obj == nil {
		return fmt.Errorf("%w: %s %d", storage.ErrUnknownReference, tableName, id)
	}
	return nil
}

// collect returns the stored records of a table matching a predicate.
// The records are not copied; they must not be modified in place.
func collect[R any](txn *memdb.Txn, tableName string, match func(*R) bool) ([]*R, error) {
	it, err := txn.Get(tableName, "id")
	if err != nil {
		return nil, err
	}

	var matched []*R
	for obj := it.Next(); obj != nil; obj = it.Next() {
		if record := obj.(*R); match(record) {
			matched = append(matched, record)
		}
	}
	return matched, nil
}

// deleteWhere deletes every record of a table matching a predicate
func deleteWhere[R any](txn *memdb.Txn, tableName string, match func(*R) bool) error {
	matched, err := collect(txn, tableName, match)
	if err != nil {
		return err
	}
	for _, record := range matched {
		if err := txn.Delete(tableName, record); err != nil {
			return err
		}
	}
	return nil
}

// The cascade functions below mirror the ON DELETE rules of the SQL schemas.

func cascadeProvider(txn *memdb.Txn, id int64) error {
	requests, err := collect(txn, tableCapacityRequests, func(req *capacity.Request) bool {
		return req.ProviderID != nil && *req.ProviderID == id
	})
	if err != nil {
		return err
	}
	for _, req := range requests {
		cpy := clone(req)
		cpy.ProviderID = nil
		if err := txn.Insert(tableCapacityRequests, cpy); err != nil {
			return err
		}
	}

	vehicles, err := collect(txn, tableVehicles, func(obj *vehicle.Vehicle) bool {
		return obj.ProviderID == id
	})
	if err != nil {
		return err
	}
	for _, obj := range vehicles {
		if err := cascadeVehicle(txn, obj.ID); err != nil {
			return err
		}
		if err := txn.Delete(tableVehicles, obj); err != nil {
			return err
		}
	}

	if err := deleteWhere(txn, tableDrivers, func(obj *driver.Driver) bool {
		return obj.ProviderID == id
	}); err != nil {
		return err
	}
	return deleteWhere(txn, tableOffers, func(obj *offer.Offer) bool {
		return obj.ProviderID == id
	})
}

func cascadeVehicle(txn *memdb.Txn, id int64) error {
	return deleteWhere(txn, tableOffers, func(obj *offer.Offer) bool {
		return obj.VehicleID == id
	})
}

func cascadeCapacityRequest(txn *memdb.Txn, id int64) error {
	return deleteWhere(txn, tableOffers, func(obj *offer.Offer) bool {
		return obj.CapacityRequestID == id
	})
}
