package mysql

import (
	"context"
	"errors"

	"order_console/errno"
	"order_console/model"

	"gorm.io/gorm"
)

func ListProducts(ctx context.Context) ([]model.Product, error) {
	var data []model.Product
	err := db.WithContext(ctx).
		Model(&model.Product{}).
		Order("id").
		Find(&data).Error
	if err != nil {
		return nil, errno.ErrQueryFailed
	}
	return data, nil
}

func QueryProduct(ctx context.Context, productID string) (model.Product, error) {
	var data model.Product
	err := db.WithContext(ctx).
		Model(&model.Product{}).
		Where("product_id = ?", productID).
		First(&data).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return data, errno.ErrProductNotFound
	}
	if err != nil {
		return data, errno.ErrQueryFailed
	}
	return data, nil
}

func CreateProduct(ctx context.Context, data *model.Product) error {
	return db.WithContext(ctx).
		Model(&model.Product{}).
		Create(data).Error
}

func UpdateProduct(ctx context.Context, data *model.Product) error {
	if _, err := QueryProduct(ctx, data.ProductID); err != nil {
		return err
	}
	err := db.WithContext(ctx).
		Model(&model.Product{}).
		Where("product_id = ?", data.ProductID).
		Select("product_name", "product_price", "image_url").
		Updates(data).Error
	if err != nil {
		return errno.ErrUpdateFailed
	}
	return nil
}

func DeleteProducts(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	err := db.WithContext(ctx).
		Where("product_id IN ?", ids).
		Delete(&model.Product{}).Error
	if err != nil {
		return errno.ErrUpdateFailed
	}
	return nil
}
