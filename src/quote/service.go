package quote

import (
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"quote-server/api/pb"
	"quote-server/src/buffer"
	"quote-server/src/interfaces"
	"quote-server/src/logger"
	"quote-server/src/orderbook"
)

// -----------------------------------------------------------------------------

const streamPopInterval = time.Second

// -----------------------------------------------------------------------------

// QuoteServiceImpl serves the Quote streaming API on top of a market data
// source. Each stream gets its own bounded subscription; a consumer that
// cannot keep up is terminated rather than allowed to stall the feed.
type QuoteServiceImpl struct {
	pb.UnimplementedQuoteServer
	Name   string
	logger *logger.Logger
	source interfaces.ISource
}

// -----------------------------------------------------------------------------

// NewQuoteService creates a new QuoteServiceImpl instance.
func NewQuoteService(logger *logger.Logger, source interfaces.ISource) *QuoteServiceImpl {
	return &QuoteServiceImpl{
		Name:   "GRPCQuoteService",
		logger: logger,
		source: source,
	}
}

// -----------------------------------------------------------------------------

// SubscribeOrderBook streams one full snapshot and then every resolved
// incremental update for the product, in sequence order. Updates already
// reflected in the snapshot are filtered out.
func (s *QuoteServiceImpl) SubscribeOrderBook(req *pb.SubscribeOrderBookRequest, stream grpc.ServerStreamingServer[pb.OrderBookEvent]) error {
	productID := req.GetProductId()
	s.logger.Info("%s : received SubscribeOrderBook request for %s", s.Name, productID)

	if !s.source.Ready() {
		return status.Error(codes.Unavailable, "order books are not loaded yet")
	}

	// subscribe before snapshotting so no update between the two is lost
	sub := s.source.SubscribeOrderBook(productID)
	defer sub.Close()

	var snapshot *pb.OrderBookEvent
	ok := s.source.GetOrderBook(productID, func(book *orderbook.Book) {
		snapshot = &pb.OrderBookEvent{
			ProductId: productID,
			Sequence:  book.Sequence(),
			Snapshot:  true,
			Bids:      entriesToPB(book.Bids()),
			Asks:      entriesToPB(book.Asks()),
		}
	})
	if !ok {
		return status.Errorf(codes.NotFound, "unknown product %q", productID)
	}

	if err := stream.Send(snapshot); err != nil {
		return err
	}
	lastSequence := snapshot.Sequence

	ctx := stream.Context()
	for {
		if ctx.Err() != nil {
			s.logger.Info("%s : order book stream for %s closed by client", s.Name, productID)
			return nil
		}

		update, state := sub.Pop(streamPopInterval)
		switch state {
		case buffer.PopTimeout:
			continue
		case buffer.PopOverflow:
			s.logger.Warning("%s : terminating slow order book consumer for %s", s.Name, productID)
			return status.Error(codes.ResourceExhausted, "consumer too slow, subscription dropped")
		}

		// already covered by the snapshot
		if update.Sequence <= lastSequence {
			continue
		}
		lastSequence = update.Sequence

		event := &pb.OrderBookEvent{
			ProductId: update.ProductID,
			Sequence:  update.Sequence,
			Time:      update.Time,
		}
		if update.Bid != nil {
			event.Bids = []*pb.OrderBookEntry{entryToPB(*update.Bid)}
		}
		if update.Ask != nil {
			event.Asks = []*pb.OrderBookEntry{entryToPB(*update.Ask)}
		}

		if err := stream.Send(event); err != nil {
			return err
		}
	}
}

// -----------------------------------------------------------------------------

// SubscribeTrade streams every trade for the product as it happens.
func (s *QuoteServiceImpl) SubscribeTrade(req *pb.SubscribeTradeRequest, stream grpc.ServerStreamingServer[pb.Trade]) error {
	productID := req.GetProductId()
	s.logger.Info("%s : received SubscribeTrade request for %s", s.Name, productID)

	if !s.source.Ready() {
		return status.Error(codes.Unavailable, "order books are not loaded yet")
	}
	if !s.source.HasProduct(productID) {
		return status.Errorf(codes.NotFound, "unknown product %q", productID)
	}

	sub := s.source.SubscribeTrade(productID)
	defer sub.Close()

	ctx := stream.Context()
	for {
		if ctx.Err() != nil {
			s.logger.Info("%s : trade stream for %s closed by client", s.Name, productID)
			return nil
		}

		trade, state := sub.Pop(streamPopInterval)
		switch state {
		case buffer.PopTimeout:
			continue
		case buffer.PopOverflow:
			s.logger.Warning("%s : terminating slow trade consumer for %s", s.Name, productID)
			return status.Error(codes.ResourceExhausted, "consumer too slow, subscription dropped")
		}

		event := &pb.Trade{
			ProductId:    trade.ProductID,
			Time:         trade.Time,
			Side:         trade.Side.String(),
			MakerOrderId: trade.MakerOrderID,
			TakerOrderId: trade.TakerOrderID,
			Price:        trade.Price.String(),
			Size:         trade.Size.String(),
			Sequence:     trade.Sequence,
		}

		if err := stream.Send(event); err != nil {
			return err
		}
	}
}

// -----------------------------------------------------------------------------

func entryToPB(e orderbook.Entry) *pb.OrderBookEntry {
	return &pb.OrderBookEntry{
		OrderId: e.OrderID,
		Price:   e.Price.String(),
		Size:    e.Size.String(),
	}
}

func entriesToPB(entries []orderbook.Entry) []*pb.OrderBookEntry {
	out := make([]*pb.OrderBookEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryToPB(e))
	}
	return out
}
