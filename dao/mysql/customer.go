package mysql

import (
	"context"
	"errors"

	"order_console/errno"
	"order_console/model"

	"gorm.io/gorm"
)

func ListCustomers(ctx context.Context) ([]model.Customer, error) {
	var data []model.Customer
	err := db.WithContext(ctx).
		Model(&model.Customer{}).
		Order("id").
		Find(&data).Error
	if err != nil {
		return nil, errno.ErrQueryFailed
	}
	return data, nil
}

func QueryCustomer(ctx context.Context, customerID string) (model.Customer, error) {
	var data model.Customer
	err := db.WithContext(ctx).
		Model(&model.Customer{}).
		Where("customer_id = ?", customerID).
		First(&data).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return data, errno.ErrCustomerNotFound
	}
	if err != nil {
		return data, errno.ErrQueryFailed
	}
	return data, nil
}

func CreateCustomer(ctx context.Context, data *model.Customer) error {
	return db.WithContext(ctx).
		Model(&model.Customer{}).
		Create(data).Error
}

func UpdateCustomer(ctx context.Context, data *model.Customer) error {
	if _, err := QueryCustomer(ctx, data.CustomerID); err != nil {
		return err
	}
	err := db.WithContext(ctx).
		Model(&model.Customer{}).
		Where("customer_id = ?", data.CustomerID).
		Select("customer_name", "customer_address", "customer_phone", "customer_birthday").
		Updates(data).Error
	if err != nil {
		return errno.ErrUpdateFailed
	}
	return nil
}

func DeleteCustomers(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	err := db.WithContext(ctx).
		Where("customer_id IN ?", ids).
		Delete(&model.Customer{}).Error
	if err != nil {
		return errno.ErrUpdateFailed
	}
	return nil
}
