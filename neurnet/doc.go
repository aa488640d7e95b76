// Package neurnet provides a small feed-forward neural network of scalar
// neurons and a random-search trainer for it.
//
// Each neuron outputs the weighted average of its inputs. Weights live in
// [0,1] and are improved without gradients: the Trainer repeatedly clones the
// best network, perturbs the clone and keeps it only when it scores better.
//
// Basic usage:
//
//	src := rand.NewSource(1) // golang.org/x/exp/rand
//	net, err := neurnet.New(src, 3, 3, 2, 2, 2)
//	if err != nil {
//		log.Fatalf("Error building network: %v", err)
//	}
//
//	samples := neurnet.SampleRange(0, 1, 0.05, 3, func(x float64) float64 { return 0.5 * x })
//	config := neurnet.DefaultTrainerConfig()
//	trainer, err := neurnet.NewTrainer(&config, net, neurnet.AbsoluteError(samples), src)
//	if err != nil {
//		log.Fatalf("Error creating trainer: %v", err)
//	}
//
//	best, err := trainer.Run()
//	if err != nil {
//		log.Fatalf("Error training: %v", err)
//	}
//	outputs, _ := best.Activate([]float64{0.4, 0, 0})
//	fmt.Println(outputs[0]) // close to 0.2
package neurnet
