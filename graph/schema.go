package graph

// Schema is the GraphQL schema served at /graphql.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	type Query {
		hello: String!
	}

	type Mutation {
		createCustomer(name: String!, email: String!, phone: String): CreateCustomerPayload
		bulkCreateCustomers(input: [CustomerInput!]!): BulkCreateCustomersPayload
		createProduct(name: String!, price: Float!, stock: Int = 0): CreateProductPayload
		createOrder(customerId: ID!, productIds: [ID!]!, orderDate: DateTime): CreateOrderPayload
	}

	input CustomerInput {
		name: String!
		email: String!
		phone: String
	}

	type Customer {
		id: ID!
		name: String!
		email: String!
		phone: String
	}

	type Product {
		id: ID!
		name: String!
		price: Float!
		stock: Int!
	}

	type Order {
		id: ID!
		customer: Customer!
		products: [Product!]!
		totalAmount: Float!
		orderDate: DateTime!
	}

	type CreateCustomerPayload {
		customer: Customer!
		message: String!
	}

	type BulkCreateCustomersPayload {
		customers: [Customer!]!
		errors: [String!]!
	}

	type CreateProductPayload {
		product: Product!
	}

	type CreateOrderPayload {
		order: Order!
	}

	"An RFC 3339 timestamp."
	scalar DateTime
`
