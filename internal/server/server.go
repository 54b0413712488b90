package server

// Сервер объединяет специфичные HTTP сервера, отвечающие за обработку
// конкретных сущностей. Здесь сущность одна: коммерческое предложение.
type Server struct {
	QuotationServer
}

func NewServer(
	quotationServer QuotationServer,
) Server {
	return Server{
		QuotationServer: quotationServer,
	}
}
