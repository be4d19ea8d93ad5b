package api

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// LedgerServiceName is the fully-qualified name of the LedgerService service.
const LedgerServiceName = "roomledger.v1.LedgerService"

// Procedure names. Each is the HTTP path the procedure is served on.
const (
	LedgerServiceCreateRoommateProcedure      = "/roomledger.v1.LedgerService/CreateRoommate"
	LedgerServiceListRoommatesProcedure       = "/roomledger.v1.LedgerService/ListRoommates"
	LedgerServiceDeleteRoommateProcedure      = "/roomledger.v1.LedgerService/DeleteRoommate"
	LedgerServiceCreateExpenseProcedure       = "/roomledger.v1.LedgerService/CreateExpense"
	LedgerServiceListExpensesProcedure        = "/roomledger.v1.LedgerService/ListExpenses"
	LedgerServiceDeleteExpenseProcedure       = "/roomledger.v1.LedgerService/DeleteExpense"
	LedgerServiceCreatePurchaseProcedure      = "/roomledger.v1.LedgerService/CreatePurchase"
	LedgerServiceListPurchasesProcedure       = "/roomledger.v1.LedgerService/ListPurchases"
	LedgerServiceDeletePurchaseProcedure      = "/roomledger.v1.LedgerService/DeletePurchase"
	LedgerServiceCreateFixedCostProcedure     = "/roomledger.v1.LedgerService/CreateFixedCost"
	LedgerServiceListFixedCostsProcedure      = "/roomledger.v1.LedgerService/ListFixedCosts"
	LedgerServiceDeleteFixedCostProcedure     = "/roomledger.v1.LedgerService/DeleteFixedCost"
	LedgerServiceSetPaidProcedure             = "/roomledger.v1.LedgerService/SetPaid"
	LedgerServiceListPaidProcedure            = "/roomledger.v1.LedgerService/ListPaid"
	LedgerServiceGetSettlementProcedure       = "/roomledger.v1.LedgerService/GetSettlement"
	LedgerServiceGetMonthlyBreakdownProcedure = "/roomledger.v1.LedgerService/GetMonthlyBreakdown"
)

// LedgerServiceHandler is implemented by the server side of LedgerService.
type LedgerServiceHandler interface {
	CreateRoommate(context.Context, *connect.Request[CreateRoommateRequest]) (*connect.Response[CreateRoommateResponse], error)
	ListRoommates(context.Context, *connect.Request[ListRoommatesRequest]) (*connect.Response[ListRoommatesResponse], error)
	DeleteRoommate(context.Context, *connect.Request[DeleteRoommateRequest]) (*connect.Response[DeleteRoommateResponse], error)
	CreateExpense(context.Context, *connect.Request[CreateExpenseRequest]) (*connect.Response[CreateExpenseResponse], error)
	ListExpenses(context.Context, *connect.Request[ListExpensesRequest]) (*connect.Response[ListExpensesResponse], error)
	DeleteExpense(context.Context, *connect.Request[DeleteExpenseRequest]) (*connect.Response[DeleteExpenseResponse], error)
	CreatePurchase(context.Context, *connect.Request[CreatePurchaseRequest]) (*connect.Response[CreatePurchaseResponse], error)
	ListPurchases(context.Context, *connect.Request[ListPurchasesRequest]) (*connect.Response[ListPurchasesResponse], error)
	DeletePurchase(context.Context, *connect.Request[DeletePurchaseRequest]) (*connect.Response[DeletePurchaseResponse], error)
	CreateFixedCost(context.Context, *connect.Request[CreateFixedCostRequest]) (*connect.Response[CreateFixedCostResponse], error)
	ListFixedCosts(context.Context, *connect.Request[ListFixedCostsRequest]) (*connect.Response[ListFixedCostsResponse], error)
	DeleteFixedCost(context.Context, *connect.Request[DeleteFixedCostRequest]) (*connect.Response[DeleteFixedCostResponse], error)
	SetPaid(context.Context, *connect.Request[SetPaidRequest]) (*connect.Response[SetPaidResponse], error)
	ListPaid(context.Context, *connect.Request[ListPaidRequest]) (*connect.Response[ListPaidResponse], error)
	GetSettlement(context.Context, *connect.Request[GetSettlementRequest]) (*connect.Response[GetSettlementResponse], error)
	GetMonthlyBreakdown(context.Context, *connect.Request[GetMonthlyBreakdownRequest]) (*connect.Response[GetMonthlyBreakdownResponse], error)
}

// NewLedgerServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler and the
// handler itself.
func NewLedgerServiceHandler(svc LedgerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(LedgerServiceCreateRoommateProcedure, connect.NewUnaryHandler(LedgerServiceCreateRoommateProcedure, svc.CreateRoommate, opts...))
	mux.Handle(LedgerServiceListRoommatesProcedure, connect.NewUnaryHandler(LedgerServiceListRoommatesProcedure, svc.ListRoommates, opts...))
	mux.Handle(LedgerServiceDeleteRoommateProcedure, connect.NewUnaryHandler(LedgerServiceDeleteRoommateProcedure, svc.DeleteRoommate, opts...))
	mux.Handle(LedgerServiceCreateExpenseProcedure, connect.NewUnaryHandler(LedgerServiceCreateExpenseProcedure, svc.CreateExpense, opts...))
	mux.Handle(LedgerServiceListExpensesProcedure, connect.NewUnaryHandler(LedgerServiceListExpensesProcedure, svc.ListExpenses, opts...))
	mux.Handle(LedgerServiceDeleteExpenseProcedure, connect.NewUnaryHandler(LedgerServiceDeleteExpenseProcedure, svc.DeleteExpense, opts...))
	mux.Handle(LedgerServiceCreatePurchaseProcedure, connect.NewUnaryHandler(LedgerServiceCreatePurchaseProcedure, svc.CreatePurchase, opts...))
	mux.Handle(LedgerServiceListPurchasesProcedure, connect.NewUnaryHandler(LedgerServiceListPurchasesProcedure, svc.ListPurchases, opts...))
	mux.Handle(LedgerServiceDeletePurchaseProcedure, connect.NewUnaryHandler(LedgerServiceDeletePurchaseProcedure, svc.DeletePurchase, opts...))
	mux.Handle(LedgerServiceCreateFixedCostProcedure, connect.NewUnaryHandler(LedgerServiceCreateFixedCostProcedure, svc.CreateFixedCost, opts...))
	mux.Handle(LedgerServiceListFixedCostsProcedure, connect.NewUnaryHandler(LedgerServiceListFixedCostsProcedure, svc.ListFixedCosts, opts...))
	mux.Handle(LedgerServiceDeleteFixedCostProcedure, connect.NewUnaryHandler(LedgerServiceDeleteFixedCostProcedure, svc.DeleteFixedCost, opts...))
	mux.Handle(LedgerServiceSetPaidProcedure, connect.NewUnaryHandler(LedgerServiceSetPaidProcedure, svc.SetPaid, opts...))
	mux.Handle(LedgerServiceListPaidProcedure, connect.NewUnaryHandler(LedgerServiceListPaidProcedure, svc.ListPaid, opts...))
	mux.Handle(LedgerServiceGetSettlementProcedure, connect.NewUnaryHandler(LedgerServiceGetSettlementProcedure, svc.GetSettlement, opts...))
	mux.Handle(LedgerServiceGetMonthlyBreakdownProcedure, connect.NewUnaryHandler(LedgerServiceGetMonthlyBreakdownProcedure, svc.GetMonthlyBreakdown, opts...))

	return "/" + LedgerServiceName + "/", mux
}

// LedgerServiceClient is a typed client for LedgerService.
type LedgerServiceClient struct {
	createRoommate      *connect.Client[CreateRoommateRequest, CreateRoommateResponse]
	listRoommates       *connect.Client[ListRoommatesRequest, ListRoommatesResponse]
	deleteRoommate      *connect.Client[DeleteRoommateRequest, DeleteRoommateResponse]
	createExpense       *connect.Client[CreateExpenseRequest, CreateExpenseResponse]
	listExpenses        *connect.Client[ListExpensesRequest, ListExpensesResponse]
	deleteExpense       *connect.Client[DeleteExpenseRequest, DeleteExpenseResponse]
	createPurchase      *connect.Client[CreatePurchaseRequest, CreatePurchaseResponse]
	listPurchases       *connect.Client[ListPurchasesRequest, ListPurchasesResponse]
	deletePurchase      *connect.Client[DeletePurchaseRequest, DeletePurchaseResponse]
	createFixedCost     *connect.Client[CreateFixedCostRequest, CreateFixedCostResponse]
	listFixedCosts      *connect.Client[ListFixedCostsRequest, ListFixedCostsResponse]
	deleteFixedCost     *connect.Client[DeleteFixedCostRequest, DeleteFixedCostResponse]
	setPaid             *connect.Client[SetPaidRequest, SetPaidResponse]
	listPaid            *connect.Client[ListPaidRequest, ListPaidResponse]
	getSettlement       *connect.Client[GetSettlementRequest, GetSettlementResponse]
	getMonthlyBreakdown *connect.Client[GetMonthlyBreakdownRequest, GetMonthlyBreakdownResponse]
}

// NewLedgerServiceClient constructs a client for the LedgerService served
// at baseURL (for example, http://localhost:8080).
func NewLedgerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *LedgerServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
	return &LedgerServiceClient{
		createRoommate:      connect.NewClient[CreateRoommateRequest, CreateRoommateResponse](httpClient, baseURL+LedgerServiceCreateRoommateProcedure, opts...),
		listRoommates:       connect.NewClient[ListRoommatesRequest, ListRoommatesResponse](httpClient, baseURL+LedgerServiceListRoommatesProcedure, opts...),
		deleteRoommate:      connect.NewClient[DeleteRoommateRequest, DeleteRoommateResponse](httpClient, baseURL+LedgerServiceDeleteRoommateProcedure, opts...),
		createExpense:       connect.NewClient[CreateExpenseRequest, CreateExpenseResponse](httpClient, baseURL+LedgerServiceCreateExpenseProcedure, opts...),
		listExpenses:        connect.NewClient[ListExpensesRequest, ListExpensesResponse](httpClient, baseURL+LedgerServiceListExpensesProcedure, opts...),
		deleteExpense:       connect.NewClient[DeleteExpenseRequest, DeleteExpenseResponse](httpClient, baseURL+LedgerServiceDeleteExpenseProcedure, opts...),
		createPurchase:      connect.NewClient[CreatePurchaseRequest, CreatePurchaseResponse](httpClient, baseURL+LedgerServiceCreatePurchaseProcedure, opts...),
		listPurchases:       connect.NewClient[ListPurchasesRequest, ListPurchasesResponse](httpClient, baseURL+LedgerServiceListPurchasesProcedure, opts...),
		deletePurchase:      connect.NewClient[DeletePurchaseRequest, DeletePurchaseResponse](httpClient, baseURL+LedgerServiceDeletePurchaseProcedure, opts...),
		createFixedCost:     connect.NewClient[CreateFixedCostRequest, CreateFixedCostResponse](httpClient, baseURL+LedgerServiceCreateFixedCostProcedure, opts...),
		listFixedCosts:      connect.NewClient[ListFixedCostsRequest, ListFixedCostsResponse](httpClient, baseURL+LedgerServiceListFixedCostsProcedure, opts...),
		deleteFixedCost:     connect.NewClient[DeleteFixedCostRequest, DeleteFixedCostResponse](httpClient, baseURL+LedgerServiceDeleteFixedCostProcedure, opts...),
		setPaid:             connect.NewClient[SetPaidRequest, SetPaidResponse](httpClient, baseURL+LedgerServiceSetPaidProcedure, opts...),
		listPaid:            connect.NewClient[ListPaidRequest, ListPaidResponse](httpClient, baseURL+LedgerServiceListPaidProcedure, opts...),
		getSettlement:       connect.NewClient[GetSettlementRequest, GetSettlementResponse](httpClient, baseURL+LedgerServiceGetSettlementProcedure, opts...),
		getMonthlyBreakdown: connect.NewClient[GetMonthlyBreakdownRequest, GetMonthlyBreakdownResponse](httpClient, baseURL+LedgerServiceGetMonthlyBreakdownProcedure, opts...),
	}
}

func (c *LedgerServiceClient) CreateRoommate(ctx context.Context, req *connect.Request[CreateRoommateRequest]) (*connect.Response[CreateRoommateResponse], error) {
	return c.createRoommate.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) ListRoommates(ctx context.Context, req *connect.Request[ListRoommatesRequest]) (*connect.Response[ListRoommatesResponse], error) {
	return c.listRoommates.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) DeleteRoommate(ctx context.Context, req *connect.Request[DeleteRoommateRequest]) (*connect.Response[DeleteRoommateResponse], error) {
	return c.deleteRoommate.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) CreateExpense(ctx context.Context, req *connect.Request[CreateExpenseRequest]) (*connect.Response[CreateExpenseResponse], error) {
	return c.createExpense.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) ListExpenses(ctx context.Context, req *connect.Request[ListExpensesRequest]) (*connect.Response[ListExpensesResponse], error) {
	return c.listExpenses.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) DeleteExpense(ctx context.Context, req *connect.Request[DeleteExpenseRequest]) (*connect.Response[DeleteExpenseResponse], error) {
	return c.deleteExpense.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) CreatePurchase(ctx context.Context, req *connect.Request[CreatePurchaseRequest]) (*connect.Response[CreatePurchaseResponse], error) {
	return c.createPurchase.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) ListPurchases(ctx context.Context, req *connect.Request[ListPurchasesRequest]) (*connect.Response[ListPurchasesResponse], error) {
	return c.listPurchases.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) DeletePurchase(ctx context.Context, req *connect.Request[DeletePurchaseRequest]) (*connect.Response[DeletePurchaseResponse], error) {
	return c.deletePurchase.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) CreateFixedCost(ctx context.Context, req *connect.Request[CreateFixedCostRequest]) (*connect.Response[CreateFixedCostResponse], error) {
	return c.createFixedCost.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) ListFixedCosts(ctx context.Context, req *connect.Request[ListFixedCostsRequest]) (*connect.Response[ListFixedCostsResponse], error) {
	return c.listFixedCosts.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) DeleteFixedCost(ctx context.Context, req *connect.Request[DeleteFixedCostRequest]) (*connect.Response[DeleteFixedCostResponse], error) {
	return c.deleteFixedCost.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) SetPaid(ctx context.Context, req *connect.Request[SetPaidRequest]) (*connect.Response[SetPaidResponse], error) {
	return c.setPaid.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) ListPaid(ctx context.Context, req *connect.Request[ListPaidRequest]) (*connect.Response[ListPaidResponse], error) {
	return c.listPaid.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) GetSettlement(ctx context.Context, req *connect.Request[GetSettlementRequest]) (*connect.Response[GetSettlementResponse], error) {
	return c.getSettlement.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) GetMonthlyBreakdown(ctx context.Context, req *connect.Request[GetMonthlyBreakdownRequest]) (*connect.Response[GetMonthlyBreakdownResponse], error) {
	return c.getMonthlyBreakdown.CallUnary(ctx, req)
}
