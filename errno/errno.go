package errno

import "errors"

var (
	ErrQueryFailed = errors.New("query db failed")

	ErrUpdateFailed = errors.New("update data failed")

	ErrOrderNotFound = errors.New("not found order")

	ErrCustomerNotFound = errors.New("not found customer")

	ErrProductNotFound = errors.New("not found product")

	ErrSheetNotFound = errors.New("not found sheet")

	// ErrOrderConfirmed ออร์เดอร์ถูกยืนยันไปแล้ว ลูกค้ายืนยันซ้ำไม่ได้
	ErrOrderConfirmed = errors.New("order already confirmed")

	// ErrSlipRequired ยืนยันออร์เดอร์ต้องแนบสลิปเสมอ
	ErrSlipRequired = errors.New("payment slip is required")

	ErrBadPayload = errors.New("invalid payload")

	ErrUnknownAction = errors.New("unknown action")

	ErrUploadFailed = errors.New("upload file failed")
)
