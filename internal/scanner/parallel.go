package scanner

import (
	"sync"

	"solloc/internal/model"
)

// workerResult 表示 worker 的执行产物。
type workerResult struct {
	index int
	item  model.FileCount
	err   error
}

// scanParallel 使用 worker 池并发统计文件。
// 结果按遍历序号重新排序后再输出，因此 sink 看到的顺序与顺序扫描一致；
// 遍历顺序中第一个失败的文件决定返回的错误。
func (s *Service) scanParallel(root string, emit func(model.FileCount) error) error {
	tasks := make(chan scanTask, s.workers*4)
	results := make(chan workerResult, s.workers*4)
	done := make(chan struct{})
	walkErrChan := make(chan error, 1)

	var workerGroup sync.WaitGroup
	for i := 0; i < s.workers; i++ {
		workerGroup.Add(1)
		go func() {
			defer workerGroup.Done()
			s.runWorker(tasks, results, done)
		}()
	}

	go func() {
		defer close(tasks)
		walkErrChan <- s.walk(root, func(task scanTask) error {
			select {
			case tasks <- task:
				return nil
			case <-done:
				return errStopped
			}
		})
	}()

	go func() {
		workerGroup.Wait()
		close(results)
	}()

	pending := make(map[int]workerResult)
	next := 0
	var firstErr error

	for result := range results {
		if firstErr != nil {
			continue
		}

		pending[result.index] = result
		for {
			current, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++

			if current.err == nil {
				current.err = emit(current.item)
			}
			if current.err != nil {
				firstErr = current.err
				close(done)
				break
			}
		}
	}

	walkErr := <-walkErrChan
	if firstErr != nil {
		return firstErr
	}
	return walkErr
}

// runWorker 执行真实的文件读取和分类。
func (s *Service) runWorker(tasks <-chan scanTask, results chan<- workerResult, done <-chan struct{}) {
	for task := range tasks {
		select {
		case <-done:
			continue
		default:
		}

		item, err := s.countFile(task)
		select {
		case results <- workerResult{index: task.index, item: item, err: err}:
		case <-done:
		}
	}
}
