package payment

import (
	"WebFood-API/domain"
	"WebFood-API/entities"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type (
	PaymentService interface {
		CreateVnPayPayment(ctx context.Context, req domain.PaymentRequest) (domain.PaymentURLResponse, error)
		CreateMomoPayment(ctx context.Context, req domain.PaymentRequest) (domain.PaymentURLResponse, error)
		CreateMidtransPayment(ctx context.Context, req domain.PaymentRequest) (domain.PaymentURLResponse, error)
	}

	// OrderLookup is satisfied by the order repository.
	OrderLookup interface {
		GetOrderByID(ctx context.Context, id uint) (*entities.Order, error)
	}

	// SnapClient is satisfied by *snap.Client.
	SnapClient interface {
		CreateTransaction(req *snap.Request) (*snap.Response, *midtrans.Error)
	}

	Config struct {
		VnPayURL string
		MomoURL  string
	}

	paymentService struct {
		orders OrderLookup
		snap   SnapClient
		config Config
		now    func() time.Time
	}
)

func NewPaymentService(orders OrderLookup, snapClient SnapClient, config Config) PaymentService {
	return NewPaymentServiceWithClock(orders, snapClient, config, time.Now)
}

func NewPaymentServiceWithClock(orders OrderLookup, snapClient SnapClient, config Config, now func() time.Time) PaymentService {
	return &paymentService{
		orders: orders,
		snap:   snapClient,
		config: config,
		now:    now,
	}
}

// amount falls back to the order total when the request leaves it out.
func (s *paymentService) amount(ctx context.Context, req domain.PaymentRequest) (decimal.Decimal, error) {
	order, err := s.orders.GetOrderByID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, domain.ErrOrderNotFound
		}
		return decimal.Zero, err
	}

	amount := order.TotalAmount
	if req.Amount != nil {
		amount = *req.Amount
	}
	if !amount.IsPositive() {
		return decimal.Zero, domain.ErrPaymentInvalidAmount
	}
	return amount, nil
}

func orderInfo(req domain.PaymentRequest) string {
	if req.OrderInfo != "" {
		return req.OrderInfo
	}
	return fmt.Sprintf("Payment for order %d", req.OrderID)
}

func buildURL(base string, params url.Values) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid payment gateway url: %w", err)
	}
	u.RawQuery = params.Encode()
	return u.String(), nil
}

func (s *paymentService) CreateVnPayPayment(ctx context.Context, req domain.PaymentRequest) (domain.PaymentURLResponse, error) {
	amount, err := s.amount(ctx, req)
	if err != nil {
		return domain.PaymentURLResponse{}, err
	}

	params := url.Values{}
	params.Set("vnp_Version", "2.1.0")
	params.Set("vnp_Command", "pay")
	params.Set("vnp_CurrCode", "VND")
	params.Set("vnp_Locale", "vn")
	// VNPay expects the amount in hundredths
	params.Set("vnp_Amount", amount.Mul(decimal.NewFromInt(100)).Round(0).String())
	params.Set("vnp_TxnRef", strconv.FormatUint(uint64(req.OrderID), 10))
	params.Set("vnp_OrderInfo", orderInfo(req))
	params.Set("vnp_CreateDate", s.now().Format("20060102150405"))

	paymentURL, err := buildURL(s.config.VnPayURL, params)
	if err != nil {
		return domain.PaymentURLResponse{}, err
	}
	return domain.PaymentURLResponse{
		Provider:   domain.PaymentProviderVnPay,
		OrderID:    req.OrderID,
		Amount:     amount,
		PaymentURL: paymentURL,
	}, nil
}

func (s *paymentService) CreateMomoPayment(ctx context.Context, req domain.PaymentRequest) (domain.PaymentURLResponse, error) {
	amount, err := s.amount(ctx, req)
	if err != nil {
		return domain.PaymentURLResponse{}, err
	}

	params := url.Values{}
	params.Set("orderId", strconv.FormatUint(uint64(req.OrderID), 10))
	params.Set("requestId", uuid.NewString())
	params.Set("amount", amount.Round(0).String())
	params.Set("orderInfo", orderInfo(req))
	params.Set("requestType", "captureWallet")

	paymentURL, err := buildURL(s.config.MomoURL, params)
	if err != nil {
		return domain.PaymentURLResponse{}, err
	}
	return domain.PaymentURLResponse{
		Provider:   domain.PaymentProviderMomo,
		OrderID:    req.OrderID,
		Amount:     amount,
		PaymentURL: paymentURL,
	}, nil
}

func (s *paymentService) CreateMidtransPayment(ctx context.Context, req domain.PaymentRequest) (domain.PaymentURLResponse, error) {
	amount, err := s.amount(ctx, req)
	if err != nil {
		return domain.PaymentURLResponse{}, err
	}

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  fmt.Sprintf("ORDER-%d-%s", req.OrderID, uuid.NewString()[:8]),
			GrossAmt: amount.Round(0).IntPart(),
		},
	}
	if req.Email != "" {
		snapReq.CustomerDetail = &midtrans.CustomerDetails{Email: req.Email}
	}

	resp, midtransErr := s.snap.CreateTransaction(snapReq)
	if midtransErr != nil {
		logrus.WithFields(logrus.Fields{
			"order_id": req.OrderID,
			"status":   midtransErr.StatusCode,
		}).Warn("midtrans transaction failed: " + midtransErr.Message)
		return domain.PaymentURLResponse{}, domain.ErrPaymentFailed
	}

	return domain.PaymentURLResponse{
		Provider:   domain.PaymentProviderMidtrans,
		OrderID:    req.OrderID,
		Amount:     amount,
		PaymentURL: resp.RedirectURL,
		Token:      resp.Token,
	}, nil
}
