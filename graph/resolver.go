// Package graph contains the GraphQL resolvers.
package graph

import (
	"context"
	"time"

	"github.com/Y-A-Dawit/alx-backend-graphql-crm/models"
	"github.com/Y-A-Dawit/alx-backend-graphql-crm/services"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/shopspring/decimal"
)

// Resolver is the root resolver for all GraphQL operations.
type Resolver struct {
	customers *services.CustomerService
	products  *services.ProductService
	orders    *services.OrderService
}

// NewResolver creates a new root resolver with the given services.
func NewResolver(customers *services.CustomerService, products *services.ProductService, orders *services.OrderService) *Resolver {
	return &Resolver{
		customers: customers,
		products:  products,
		orders:    orders,
	}
}

// NewSchema parses the schema against a root resolver backed by the
// given services.
func NewSchema(customers *services.CustomerService, products *services.ProductService, orders *services.OrderService) *graphql.Schema {
	return graphql.MustParseSchema(Schema, NewResolver(customers, products, orders))
}

// Hello is the schema's liveness probe.
func (r *Resolver) Hello() string {
	return "Hello, GraphQL!"
}

type customerInput struct {
	Name  string
	Email string
	Phone *string
}

func (in customerInput) toService() services.CustomerInput {
	return services.CustomerInput{
		Name:  in.Name,
		Email: in.Email,
		Phone: in.Phone,
	}
}

func (r *Resolver) CreateCustomer(ctx context.Context, args struct {
	Name  string
	Email string
	Phone *string
}) (*createCustomerPayloadResolver, error) {
	customer, err := r.customers.Create(ctx, services.CustomerInput{
		Name:  args.Name,
		Email: args.Email,
		Phone: args.Phone,
	})
	if err != nil {
		return nil, err
	}
	return &createCustomerPayloadResolver{
		customer: customer,
		message:  "Customer created successfully",
	}, nil
}

func (r *Resolver) BulkCreateCustomers(ctx context.Context, args struct {
	Input []customerInput
}) (*bulkCreateCustomersPayloadResolver, error) {
	inputs := make([]services.CustomerInput, 0, len(args.Input))
	for _, in := range args.Input {
		inputs = append(inputs, in.toService())
	}
	created, errs := r.customers.BulkCreate(ctx, inputs)
	return &bulkCreateCustomersPayloadResolver{customers: created, errors: errs}, nil
}

func (r *Resolver) CreateProduct(ctx context.Context, args struct {
	Name  string
	Price float64
	Stock int32
}) (*createProductPayloadResolver, error) {
	product, err := r.products.Create(ctx, args.Name, decimal.NewFromFloat(args.Price), int(args.Stock))
	if err != nil {
		return nil, err
	}
	return &createProductPayloadResolver{product: product}, nil
}

func (r *Resolver) CreateOrder(ctx context.Context, args struct {
	CustomerID graphql.ID
	ProductIDs []graphql.ID
	OrderDate  *DateTime
}) (*createOrderPayloadResolver, error) {
	productIDs := make([]string, 0, len(args.ProductIDs))
	for _, id := range args.ProductIDs {
		productIDs = append(productIDs, string(id))
	}
	var orderDate *time.Time
	if args.OrderDate != nil {
		orderDate = &args.OrderDate.Time
	}
	order, err := r.orders.Create(ctx, string(args.CustomerID), productIDs, orderDate)
	if err != nil {
		return nil, err
	}
	return &createOrderPayloadResolver{order: order}, nil
}

// --- Type resolvers ---

type customerResolver struct {
	c *models.Customer
}

func (r *customerResolver) ID() graphql.ID {
	return graphql.ID(r.c.ID.String())
}

func (r *customerResolver) Name() string {
	return r.c.Name
}

func (r *customerResolver) Email() string {
	return r.c.Email
}

func (r *customerResolver) Phone() *string {
	return r.c.Phone
}

type productResolver struct {
	p *models.Product
}

func (r *productResolver) ID() graphql.ID {
	return graphql.ID(r.p.ID.String())
}

func (r *productResolver) Name() string {
	return r.p.Name
}

func (r *productResolver) Price() float64 {
	f, _ := r.p.Price.Float64()
	return f
}

func (r *productResolver) Stock() int32 {
	return int32(r.p.Stock)
}

type orderResolver struct {
	o *models.Order
}

func (r *orderResolver) ID() graphql.ID {
	return graphql.ID(r.o.ID.String())
}

func (r *orderResolver) Customer() *customerResolver {
	return &customerResolver{c: &r.o.Customer}
}

func (r *orderResolver) Products() []*productResolver {
	products := make([]*productResolver, 0, len(r.o.OrderProducts))
	for i := range r.o.OrderProducts {
		products = append(products, &productResolver{p: &r.o.OrderProducts[i].Product})
	}
	return products
}

func (r *orderResolver) TotalAmount() float64 {
	f, _ := r.o.TotalAmount.Float64()
	return f
}

func (r *orderResolver) OrderDate() DateTime {
	return DateTime{Time: r.o.OrderDate}
}

// --- Payload resolvers ---

type createCustomerPayloadResolver struct {
	customer *models.Customer
	message  string
}

func (r *createCustomerPayloadResolver) Customer() *customerResolver {
	return &customerResolver{c: r.customer}
}

func (r *createCustomerPayloadResolver) Message() string {
	return r.message
}

type bulkCreateCustomersPayloadResolver struct {
	customers []*models.Customer
	errors    []string
}

func (r *bulkCreateCustomersPayloadResolver) Customers() []*customerResolver {
	resolvers := make([]*customerResolver, 0, len(r.customers))
	for _, c := range r.customers {
		resolvers = append(resolvers, &customerResolver{c: c})
	}
	return resolvers
}

func (r *bulkCreateCustomersPayloadResolver) Errors() []string {
	if r.errors == nil {
		return []string{}
	}
	return r.errors
}

type createProductPayloadResolver struct {
	product *models.Product
}

func (r *createProductPayloadResolver) Product() *productResolver {
	return &productResolver{p: r.product}
}

type createOrderPayloadResolver struct {
	order *models.Order
}

func (r *createOrderPayloadResolver) Order() *orderResolver {
	return &orderResolver{o: r.order}
}
